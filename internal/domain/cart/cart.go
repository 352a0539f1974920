package cart

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

// Line is one pre-purchase selection. Lines are keyed by (ProductID, Size):
// adding the same combination again increments quantity instead of appending.
type Line struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	PriceCents int64     `json:"price_cents"`
	Quantity   int32     `json:"quantity"`
	Size       string    `json:"size"`
}

// Cart is the pre-checkout staging area for one user. All mutation goes
// through its methods; the caller persists the whole cart after every write.
type Cart struct {
	Lines []Line `json:"lines"`
}

func New() *Cart {
	return &Cart{Lines: []Line{}}
}

// AddLine merges into an existing (product, size) line when present,
// otherwise appends a new line with a fresh identifier. No stock check and no
// upper bound on quantity at this layer.
func (c *Cart) AddLine(productID uuid.UUID, name, image string, priceCents int64, quantity int32, size string) (Line, error) {
	if quantity <= 0 {
		return Line{}, ErrInvalidQuantity
	}

	for i, line := range c.Lines {
		if line.ProductID == productID && line.Size == size {
			c.Lines[i].Quantity += quantity
			return c.Lines[i], nil
		}
	}

	line := Line{
		ID:         uuid.New(),
		ProductID:  productID,
		Name:       name,
		Image:      image,
		PriceCents: priceCents,
		Quantity:   quantity,
		Size:       size,
	}
	c.Lines = append(c.Lines, line)
	return line, nil
}

// RemoveLine deletes the line with the given identifier. Removing an absent
// line is a no-op.
func (c *Cart) RemoveLine(lineID uuid.UUID) {
	for i, line := range c.Lines {
		if line.ID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces a line's quantity. Zero removes the line; negative
// quantities are rejected rather than stored.
func (c *Cart) SetQuantity(lineID uuid.UUID, quantity int32) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		c.RemoveLine(lineID)
		return nil
	}
	for i, line := range c.Lines {
		if line.ID == lineID {
			c.Lines[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

func (c *Cart) Clear() {
	c.Lines = []Line{}
}

// TotalCents is the sum of price x quantity over all lines. Tax and shipping
// overlays are presentation concerns computed downstream.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.PriceCents * int64(line.Quantity)
	}
	return total
}

// Count is the sum of quantities, used for UI badges.
func (c *Cart) Count() int32 {
	var count int32
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

func (c *Cart) FindLine(lineID uuid.UUID) (Line, bool) {
	for _, line := range c.Lines {
		if line.ID == lineID {
			return line, true
		}
	}
	return Line{}, false
}
