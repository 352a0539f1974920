package commands

import (
	"context"

	"shoestore-api/internal/domain/order"
	"shoestore-api/internal/domain/product"
	"shoestore-api/internal/infra"
	"shoestore-api/internal/pkg/errs"
	"shoestore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// CreateOrderLine is one requested (product, size, quantity) triple from the
// checkout submission.
type CreateOrderLine struct {
	ProductID uuid.UUID
	Size      string
	Quantity  int32
}

type OrderCommands interface {
	Create(ctx context.Context, userID uuid.UUID, lines []CreateOrderLine) (*queries.OrderView, error)
	UpdateDeliveryStatus(ctx context.Context, orderID uuid.UUID, status string) (*queries.OrderView, error)
	Cancel(ctx context.Context, orderID, userID uuid.UUID) (*queries.OrderView, error)
}

type orderCommandsImpl struct {
	orderRepo    OrderRepository
	orderReads   queries.OrderReadStore
	productReads queries.ProductReadStore
}

func NewOrderCommands(
	orderRepo OrderRepository,
	orderReads queries.OrderReadStore,
	productReads queries.ProductReadStore,
) OrderCommands {
	return &orderCommandsImpl{
		orderRepo:    orderRepo,
		orderReads:   orderReads,
		productReads: productReads,
	}
}

// Create resolves every requested line against the catalog, freezes the
// snapshots, and persists the whole order in a single insert. Input shape is
// checked before any catalog access; a single dangling product reference
// fails the entire operation with nothing written.
//
// Stock is deliberately untouched here: inventory accounting is outside this
// flow. The read-then-insert sequence is not wrapped in a transaction; a price
// edit racing a checkout lands on one side or the other, which matches
// "price at time of purchase".
func (c *orderCommandsImpl) Create(ctx context.Context, userID uuid.UUID, lines []CreateOrderLine) (*queries.OrderView, error) {
	if err := validateOrderLines(lines); err != nil {
		return nil, err
	}

	snapshots := make([]order.LineSnapshot, 0, len(lines))
	for _, line := range lines {
		productView, err := c.productReads.FindByID(ctx, line.ProductID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(errs.Newf("product %s not found", line.ProductID), errs.ErrProductNotFound)
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		productEntity := product.ReconstructProduct(
			productView.ID, productView.Name, productView.Category,
			productView.PriceCents, productView.DiscountPercentage, productView.StockQuantity,
			productView.Images, productView.Description, productView.IsFeatured,
			productView.AvailableSizes, productView.CreatedAt, productView.UpdatedAt,
		)

		snapshot, err := order.NewLineSnapshot(productEntity, line.Size, line.Quantity)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidOrderLine)
		}
		snapshots = append(snapshots, snapshot)
	}

	orderEntity, err := order.NewOrder(userID, snapshots)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	orderID, err := c.orderRepo.Create(ctx, orderEntity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the row as persisted, server timestamp included
	view, err := c.orderReads.FindByID(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// UpdateDeliveryStatus is the administrator transition: any stored status may
// be overwritten with any valid status. The transition check lives in
// order.Status.CanTransitionTo and nowhere else.
func (c *orderCommandsImpl) UpdateDeliveryStatus(ctx context.Context, orderID uuid.UUID, status string) (*queries.OrderView, error) {
	newStatus, err := order.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	view, err := c.orderReads.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !order.Status(view.DeliveryStatus).CanTransitionTo(newStatus) {
		return nil, errs.Mark(order.ErrInvalidStatus, errs.ErrDomainValidation)
	}

	if err := c.orderRepo.UpdateDeliveryStatus(ctx, orderID, newStatus); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view.DeliveryStatus = newStatus.String()
	return view, nil
}

// Cancel is the customer path: only the owner may cancel, only while the
// order is still processing, and cancellation removes the row entirely. The
// deleted record is returned as confirmation. Absent orders and other users'
// orders are indistinguishable to the caller.
func (c *orderCommandsImpl) Cancel(ctx context.Context, orderID, userID uuid.UUID) (*queries.OrderView, error) {
	view, err := c.orderReads.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if view.UserID != userID {
		return nil, errs.ErrOrderNotFound
	}

	if !order.Status(view.DeliveryStatus).CancellableByCustomer() {
		return nil, errs.ErrOrderNotCancellable
	}

	if err := c.orderRepo.Delete(ctx, orderID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// validateOrderLines rejects malformed input before any catalog lookup.
func validateOrderLines(lines []CreateOrderLine) error {
	if len(lines) == 0 {
		return errs.ErrEmptyOrder
	}
	for i, line := range lines {
		if line.ProductID == uuid.Nil {
			return errs.Mark(errs.Newf("line %d: missing product_id", i), errs.ErrInvalidOrderLine)
		}
		if line.Size == "" {
			return errs.Mark(errs.Newf("line %d: missing size", i), errs.ErrInvalidOrderLine)
		}
		if line.Quantity <= 0 {
			return errs.Mark(errs.Newf("line %d: quantity must be positive", i), errs.ErrInvalidOrderLine)
		}
	}
	return nil
}
