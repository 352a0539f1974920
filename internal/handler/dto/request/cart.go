package request

import (
	"github.com/google/uuid"
)

type AddCartLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Size      string    `json:"size" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required,gt=0"`
}

type SetCartQuantityRequest struct {
	// Zero removes the line.
	Quantity int32 `json:"quantity" binding:"gte=0"`
}
