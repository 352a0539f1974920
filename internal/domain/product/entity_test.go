//go:build unit

package product_test

import (
	"testing"

	"shoestore-api/internal/domain/product"
	"shoestore-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalePriceCents(t *testing.T) {
	cases := []struct {
		name     string
		list     int64
		discount float64
		want     int64
	}{
		{name: "no discount", list: 12900, discount: 0, want: 12900},
		{name: "ten percent", list: 12900, discount: 10, want: 11610},
		{name: "rounds down to the cent", list: 999, discount: 33, want: 670},
		{name: "full discount", list: 12900, discount: 100, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, product.SalePriceCents(tc.list, tc.discount))
		})
	}
}

func TestNewProduct(t *testing.T) {
	t.Run("stores the discounted price", func(t *testing.T) {
		p, err := builder.NewProductBuilder().
			WithPriceCents(10000).
			WithDiscount(25).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(7500), p.PriceCents())
		assert.Equal(t, float64(25), p.DiscountPercentage())
	})

	t.Run("trims and requires a name", func(t *testing.T) {
		p, err := builder.NewProductBuilder().WithName("  Runner  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Runner", p.Name())

		_, err = builder.NewProductBuilder().WithName("   ").BuildDomain()
		assert.ErrorIs(t, err, product.ErrEmptyName)
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.ProductBuilder)
			errIs  error
		}{
			{
				name:   "negative price",
				mutate: func(b *builder.ProductBuilder) { b.PriceCents = -1 },
				errIs:  product.ErrNegativePrice,
			},
			{
				name:   "discount above 100",
				mutate: func(b *builder.ProductBuilder) { b.DiscountPercentage = 101 },
				errIs:  product.ErrInvalidDiscount,
			},
			{
				name:   "negative discount",
				mutate: func(b *builder.ProductBuilder) { b.DiscountPercentage = -1 },
				errIs:  product.ErrInvalidDiscount,
			},
			{
				name:   "negative stock",
				mutate: func(b *builder.ProductBuilder) { b.StockQuantity = -1 },
				errIs:  product.ErrNegativeStock,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewProductBuilder()
				tc.mutate(b)
				_, err := b.BuildDomain()
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestProductHelpers(t *testing.T) {
	t.Run("first image falls back to empty", func(t *testing.T) {
		p := builder.NewProductBuilder().BuildReconstructed()
		assert.Equal(t, p.Images()[0], p.FirstImage())

		empty := builder.NewProductBuilder()
		empty.Images = nil
		assert.Equal(t, "", empty.BuildReconstructed().FirstImage())
	})

	t.Run("low stock boundary", func(t *testing.T) {
		assert.True(t, builder.NewProductBuilder().WithStock(9).BuildReconstructed().IsLowStock())
		assert.False(t, builder.NewProductBuilder().WithStock(10).BuildReconstructed().IsLowStock())
	})

	t.Run("size lookup", func(t *testing.T) {
		p := builder.NewProductBuilder().WithSizes("40", "41").BuildReconstructed()
		assert.True(t, p.HasSize("40"))
		assert.False(t, p.HasSize("44"))
	})
}
