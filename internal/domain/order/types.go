package order

// Status is the delivery lifecycle state of an order.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo is the single choke point for status changes. Administrators
// may currently move an order to any valid status; tighten the graph here if
// product requirements ever demand it.
func (s Status) CanTransitionTo(next Status) bool {
	return next.IsValid()
}

// CancellableByCustomer reports whether the owning customer may still cancel.
// Customers can only back out while the order has not left processing.
func (s Status) CancellableByCustomer() bool {
	return s == StatusProcessing
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
