//go:build unit || e2e

package builder

import (
	"time"

	"shoestore-api/internal/domain/product"
	"shoestore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID                 uuid.UUID
	Name               string
	Category           string
	PriceCents         int64
	DiscountPercentage float64
	StockQuantity      int32
	Images             []string
	Description        string
	IsFeatured         bool
	AvailableSizes     []string
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:                 uuid.New(),
		Name:               "Runner Classic",
		Category:           "running",
		PriceCents:         12900,
		DiscountPercentage: 0,
		StockQuantity:      25,
		Images:             []string{"https://img.example.com/runner-classic.jpg"},
		Description:        "Lightweight everyday trainer",
		IsFeatured:         false,
		AvailableSizes:     []string{"40", "41", "42", "43"},
	}
}

func (p *ProductBuilder) BuildDomain() (*product.Product, error) {
	return product.NewProduct(
		p.Name, p.Category, p.PriceCents, p.DiscountPercentage,
		p.StockQuantity, p.Images, p.Description, p.IsFeatured, p.AvailableSizes,
	)
}

// BuildReconstructed yields an entity with the builder's fixed ID, price taken
// as the stored sale price.
func (p *ProductBuilder) BuildReconstructed() *product.Product {
	now := time.Now()
	return product.ReconstructProduct(
		p.ID, p.Name, p.Category, p.PriceCents, p.DiscountPercentage,
		p.StockQuantity, p.Images, p.Description, p.IsFeatured,
		p.AvailableSizes, now, now,
	)
}

func (p *ProductBuilder) BuildReadModel() *queries.ProductView {
	now := time.Now()
	return &queries.ProductView{
		ID:                 p.ID,
		Name:               p.Name,
		Category:           p.Category,
		PriceCents:         p.PriceCents,
		DiscountPercentage: p.DiscountPercentage,
		StockQuantity:      p.StockQuantity,
		Images:             p.Images,
		Description:        p.Description,
		IsFeatured:         p.IsFeatured,
		AvailableSizes:     p.AvailableSizes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (p *ProductBuilder) WithName(name string) *ProductBuilder {
	p.Name = name
	return p
}

func (p *ProductBuilder) WithPriceCents(cents int64) *ProductBuilder {
	p.PriceCents = cents
	return p
}

func (p *ProductBuilder) WithDiscount(pct float64) *ProductBuilder {
	p.DiscountPercentage = pct
	return p
}

func (p *ProductBuilder) WithStock(qty int32) *ProductBuilder {
	p.StockQuantity = qty
	return p
}

func (p *ProductBuilder) WithSizes(sizes ...string) *ProductBuilder {
	p.AvailableSizes = sizes
	return p
}
