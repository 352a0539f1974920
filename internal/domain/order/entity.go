package order

import (
	"errors"
	"time"

	"shoestore-api/internal/domain/product"

	"github.com/google/uuid"
)

var (
	ErrNoLines         = errors.New("order must contain at least one line")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptySize       = errors.New("size must not be empty")
	ErrInvalidStatus   = errors.New("invalid delivery status")
)

// LineSnapshot is the immutable record of one purchased item as of purchase
// time. Once written it is never re-derived from catalog state; later product
// edits must not change what the customer bought.
type LineSnapshot struct {
	ProductID            uuid.UUID `json:"product_id"`
	ProductName          string    `json:"product_name"`
	Image                string    `json:"image"`
	PriceAtPurchaseCents int64     `json:"price_at_purchase_cents"`
	Quantity             int32     `json:"quantity"`
	Size                 string    `json:"size"`
}

// NewLineSnapshot freezes the product's current name, first image and price
// together with the requested size and quantity.
func NewLineSnapshot(p *product.Product, size string, quantity int32) (LineSnapshot, error) {
	if quantity <= 0 {
		return LineSnapshot{}, ErrInvalidQuantity
	}
	if size == "" {
		return LineSnapshot{}, ErrEmptySize
	}

	return LineSnapshot{
		ProductID:            p.ID(),
		ProductName:          p.Name(),
		Image:                p.FirstImage(),
		PriceAtPurchaseCents: p.PriceCents(),
		Quantity:             quantity,
		Size:                 size,
	}, nil
}

func (l LineSnapshot) TotalCents() int64 {
	return l.PriceAtPurchaseCents * int64(l.Quantity)
}

type Order struct {
	id            uuid.UUID
	userID        uuid.UUID
	lines         []LineSnapshot
	totalCents    int64
	status        Status
	paymentStatus *string
	createdAt     time.Time
}

// NewOrder aggregates resolved line snapshots into an order. The total is the
// exact sum of line totals; orders always start in processing.
func NewOrder(userID uuid.UUID, lines []LineSnapshot) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	var total int64
	for _, line := range lines {
		total += line.TotalCents()
	}

	return &Order{
		id:         uuid.New(),
		userID:     userID,
		lines:      lines,
		totalCents: total,
		status:     StatusProcessing,
	}, nil
}

func ReconstructOrder(id, userID uuid.UUID, lines []LineSnapshot, totalCents int64, status Status, paymentStatus *string, createdAt time.Time) *Order {
	return &Order{
		id:            id,
		userID:        userID,
		lines:         lines,
		totalCents:    totalCents,
		status:        status,
		paymentStatus: paymentStatus,
		createdAt:     createdAt,
	}
}

func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.userID == userID
}

func (o *Order) ID() uuid.UUID          { return o.id }
func (o *Order) UserID() uuid.UUID      { return o.userID }
func (o *Order) Lines() []LineSnapshot  { return o.lines }
func (o *Order) TotalCents() int64      { return o.totalCents }
func (o *Order) Status() Status         { return o.status }
func (o *Order) PaymentStatus() *string { return o.paymentStatus }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
