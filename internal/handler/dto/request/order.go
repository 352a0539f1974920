package request

import (
	"shoestore-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type OrderLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Size      string    `json:"size" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	Items []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CreateOrderRequest) ToLines() []commands.CreateOrderLine {
	lines := make([]commands.CreateOrderLine, len(r.Items))
	for i, item := range r.Items {
		lines[i] = commands.CreateOrderLine{
			ProductID: item.ProductID,
			Size:      item.Size,
			Quantity:  item.Quantity,
		}
	}
	return lines
}

type UpdateDeliveryStatusRequest struct {
	DeliveryStatus string `json:"delivery_status" binding:"required"`
}
