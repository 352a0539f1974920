package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Product errors
	ErrProductNotFound = errors.New("product not found")

	// Order errors
	ErrOrderNotFound       = errors.New("order not found")
	ErrEmptyOrder          = errors.New("order has no items")
	ErrInvalidOrderLine    = errors.New("invalid order line")
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")

	// Cart errors
	ErrCartLineNotFound = errors.New("cart line not found")
	ErrInvalidQuantity  = errors.New("invalid quantity")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
