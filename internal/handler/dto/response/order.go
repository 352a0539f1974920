package response

import (
	"time"

	"shoestore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderLineResponse struct {
	ProductID            uuid.UUID `json:"product_id"`
	ProductName          string    `json:"product_name"`
	Image                string    `json:"image"`
	PriceAtPurchaseCents int64     `json:"price_at_purchase_cents"`
	Quantity             int32     `json:"quantity"`
	Size                 string    `json:"size"`
}

type OrderResponse struct {
	ID             uuid.UUID           `json:"id"`
	UserID         uuid.UUID           `json:"user_id"`
	Items          []OrderLineResponse `json:"items"`
	TotalCents     int64               `json:"total_cents"`
	DeliveryStatus string              `json:"delivery_status"`
	PaymentStatus  *string             `json:"payment_status,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

type AdminOrderResponse struct {
	OrderResponse
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

func FromOrderView(rm *queries.OrderView) *OrderResponse {
	items := make([]OrderLineResponse, len(rm.Items))
	for i, line := range rm.Items {
		items[i] = OrderLineResponse{
			ProductID:            line.ProductID,
			ProductName:          line.ProductName,
			Image:                line.Image,
			PriceAtPurchaseCents: line.PriceAtPurchaseCents,
			Quantity:             line.Quantity,
			Size:                 line.Size,
		}
	}
	return &OrderResponse{
		ID:             rm.ID,
		UserID:         rm.UserID,
		Items:          items,
		TotalCents:     rm.TotalCents,
		DeliveryStatus: rm.DeliveryStatus,
		PaymentStatus:  rm.PaymentStatus,
		CreatedAt:      rm.CreatedAt,
	}
}

func FromOrderViews(rms []*queries.OrderView) []*OrderResponse {
	out := make([]*OrderResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromOrderView(rm)
	}
	return out
}

func FromAdminOrderListItem(rm *queries.AdminOrderListItem) *AdminOrderResponse {
	return &AdminOrderResponse{
		OrderResponse: *FromOrderView(&rm.OrderView),
		CustomerName:  rm.CustomerName,
		CustomerEmail: rm.CustomerEmail,
	}
}

func FromAdminOrderListItems(rms []*queries.AdminOrderListItem) []*AdminOrderResponse {
	out := make([]*AdminOrderResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromAdminOrderListItem(rm)
	}
	return out
}
