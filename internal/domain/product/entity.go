package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("product name must not be empty")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidDiscount = errors.New("discount percentage must be between 0 and 100")
	ErrNegativeStock   = errors.New("stock quantity cannot be negative")
)

// LowStockThreshold marks products needing restock on the back-office dashboard.
const LowStockThreshold = 10

// Product is the catalog entity. priceCents is the authoritative sale price,
// the amount actually charged. discountPercentage is informational and must
// never be reapplied when pricing an order.
type Product struct {
	id                 uuid.UUID
	name               string
	category           string
	priceCents         int64
	discountPercentage float64
	stockQuantity      int32
	images             []string
	description        string
	isFeatured         bool
	availableSizes     []string
	createdAt          time.Time
	updatedAt          time.Time
}

// NewProduct builds a catalog entry from an admin submission. The discount is
// applied to the list price exactly once, here; the stored price is already
// discounted.
func NewProduct(name, category string, listPriceCents int64, discountPercentage float64, stockQuantity int32, images []string, description string, isFeatured bool, availableSizes []string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if listPriceCents < 0 {
		return nil, ErrNegativePrice
	}
	if discountPercentage < 0 || discountPercentage > 100 {
		return nil, ErrInvalidDiscount
	}
	if stockQuantity < 0 {
		return nil, ErrNegativeStock
	}

	return &Product{
		id:                 uuid.New(),
		name:               name,
		category:           strings.TrimSpace(category),
		priceCents:         SalePriceCents(listPriceCents, discountPercentage),
		discountPercentage: discountPercentage,
		stockQuantity:      stockQuantity,
		images:             images,
		description:        description,
		isFeatured:         isFeatured,
		availableSizes:     availableSizes,
	}, nil
}

func ReconstructProduct(id uuid.UUID, name, category string, priceCents int64, discountPercentage float64, stockQuantity int32, images []string, description string, isFeatured bool, availableSizes []string, createdAt, updatedAt time.Time) *Product {
	return &Product{
		id:                 id,
		name:               name,
		category:           category,
		priceCents:         priceCents,
		discountPercentage: discountPercentage,
		stockQuantity:      stockQuantity,
		images:             images,
		description:        description,
		isFeatured:         isFeatured,
		availableSizes:     availableSizes,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// SalePriceCents derives the charged price from a list price and a discount
// percentage, rounded down to the nearest cent.
func SalePriceCents(listPriceCents int64, discountPercentage float64) int64 {
	discount := int64(float64(listPriceCents) * discountPercentage / 100.0)
	return listPriceCents - discount
}

func (p *Product) FirstImage() string {
	if len(p.images) == 0 {
		return ""
	}
	return p.images[0]
}

func (p *Product) IsLowStock() bool {
	return p.stockQuantity < LowStockThreshold
}

func (p *Product) HasSize(size string) bool {
	for _, s := range p.availableSizes {
		if s == size {
			return true
		}
	}
	return false
}

func (p *Product) ID() uuid.UUID               { return p.id }
func (p *Product) Name() string                { return p.name }
func (p *Product) Category() string            { return p.category }
func (p *Product) PriceCents() int64           { return p.priceCents }
func (p *Product) DiscountPercentage() float64 { return p.discountPercentage }
func (p *Product) StockQuantity() int32        { return p.stockQuantity }
func (p *Product) Images() []string            { return p.images }
func (p *Product) Description() string         { return p.description }
func (p *Product) IsFeatured() bool            { return p.isFeatured }
func (p *Product) AvailableSizes() []string    { return p.availableSizes }
func (p *Product) CreatedAt() time.Time        { return p.createdAt }
func (p *Product) UpdatedAt() time.Time        { return p.updatedAt }
