package response

import (
	"shoestore-api/internal/domain/cart"

	"github.com/google/uuid"
)

type CartLineResponse struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	PriceCents int64     `json:"price_cents"`
	Quantity   int32     `json:"quantity"`
	Size       string    `json:"size"`
}

type CartResponse struct {
	Items      []CartLineResponse `json:"items"`
	TotalCents int64              `json:"total_cents"`
	Count      int32              `json:"count"`
}

func FromCart(c *cart.Cart) *CartResponse {
	items := make([]CartLineResponse, len(c.Lines))
	for i, line := range c.Lines {
		items[i] = CartLineResponse{
			ID:         line.ID,
			ProductID:  line.ProductID,
			Name:       line.Name,
			Image:      line.Image,
			PriceCents: line.PriceCents,
			Quantity:   line.Quantity,
			Size:       line.Size,
		}
	}
	return &CartResponse{
		Items:      items,
		TotalCents: c.TotalCents(),
		Count:      c.Count(),
	}
}
