//go:build unit || e2e

package builder

import (
	"time"

	"shoestore-api/internal/domain/order"
	"shoestore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Lines          []order.LineSnapshot
	DeliveryStatus string
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Lines: []order.LineSnapshot{
			{
				ProductID:            uuid.New(),
				ProductName:          "Runner Classic",
				Image:                "https://img.example.com/runner-classic.jpg",
				PriceAtPurchaseCents: 12900,
				Quantity:             1,
				Size:                 "42",
			},
		},
		DeliveryStatus: "processing",
	}
}

func (o *OrderBuilder) BuildDomain() (*order.Order, error) {
	return order.NewOrder(o.UserID, o.Lines)
}

func (o *OrderBuilder) BuildReadModel() *queries.OrderView {
	items := make([]queries.OrderLineView, len(o.Lines))
	var total int64
	for i, line := range o.Lines {
		items[i] = queries.OrderLineView{
			ProductID:            line.ProductID,
			ProductName:          line.ProductName,
			Image:                line.Image,
			PriceAtPurchaseCents: line.PriceAtPurchaseCents,
			Quantity:             line.Quantity,
			Size:                 line.Size,
		}
		total += line.TotalCents()
	}
	return &queries.OrderView{
		ID:             o.ID,
		UserID:         o.UserID,
		Items:          items,
		TotalCents:     total,
		DeliveryStatus: o.DeliveryStatus,
		CreatedAt:      time.Now(),
	}
}

func (o *OrderBuilder) WithUserID(id uuid.UUID) *OrderBuilder {
	o.UserID = id
	return o
}

func (o *OrderBuilder) WithStatus(status string) *OrderBuilder {
	o.DeliveryStatus = status
	return o
}

func (o *OrderBuilder) WithLine(line order.LineSnapshot) *OrderBuilder {
	o.Lines = append(o.Lines, line)
	return o
}

func (o *OrderBuilder) WithoutLines() *OrderBuilder {
	o.Lines = nil
	return o
}
