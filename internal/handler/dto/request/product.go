package request

import (
	"shoestore-api/internal/usecase/commands"
)

type ProductRequest struct {
	Name               string   `json:"name" binding:"required"`
	Category           string   `json:"category" binding:"required"`
	PriceCents         int64    `json:"price_cents" binding:"required,gte=0"`
	DiscountPercentage float64  `json:"discount_percentage" binding:"gte=0,lte=100"`
	StockQuantity      int32    `json:"stock_quantity" binding:"gte=0"`
	Images             []string `json:"images"`
	Description        string   `json:"description"`
	IsFeatured         bool     `json:"is_featured"`
	AvailableSizes     []string `json:"available_sizes"`
}

func (r ProductRequest) ToInput() commands.ProductInput {
	return commands.ProductInput{
		Name:               r.Name,
		Category:           r.Category,
		PriceCents:         r.PriceCents,
		DiscountPercentage: r.DiscountPercentage,
		StockQuantity:      r.StockQuantity,
		Images:             r.Images,
		Description:        r.Description,
		IsFeatured:         r.IsFeatured,
		AvailableSizes:     r.AvailableSizes,
	}
}
