package response

import (
	"time"

	"shoestore-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProductResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Category           string    `json:"category"`
	PriceCents         int64     `json:"price_cents"`
	DiscountPercentage float64   `json:"discount_percentage"`
	StockQuantity      int32     `json:"stock_quantity"`
	Images             []string  `json:"images"`
	Description        string    `json:"description"`
	IsFeatured         bool      `json:"is_featured"`
	AvailableSizes     []string  `json:"available_sizes"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromProductView(view *queries.ProductView) *ProductResponse {
	var resp ProductResponse
	// Field names line up one to one
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromProductViews(views []*queries.ProductView) []*ProductResponse {
	out := make([]*ProductResponse, len(views))
	for i, v := range views {
		out[i] = FromProductView(v)
	}
	return out
}
