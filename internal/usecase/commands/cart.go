package commands

import (
	"context"

	"shoestore-api/internal/domain/cart"
	"shoestore-api/internal/infra"
	"shoestore-api/internal/pkg/errs"
	"shoestore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartCommands interface {
	Get(ctx context.Context, userID uuid.UUID) (*cart.Cart, error)
	AddLine(ctx context.Context, userID, productID uuid.UUID, size string, quantity int32) (*cart.Cart, error)
	SetQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int32) (*cart.Cart, error)
	RemoveLine(ctx context.Context, userID, lineID uuid.UUID) (*cart.Cart, error)
	Clear(ctx context.Context, userID uuid.UUID) (*cart.Cart, error)
}

type cartCommandsImpl struct {
	store        CartStore
	productReads queries.ProductReadStore
}

func NewCartCommands(store CartStore, productReads queries.ProductReadStore) CartCommands {
	return &cartCommandsImpl{store: store, productReads: productReads}
}

func (c *cartCommandsImpl) Get(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	loaded, err := c.store.Load(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return loaded, nil
}

// AddLine resolves the product at add time so the cart carries its own copy
// of the display fields and the then-current price. Checkout prices the order
// from the catalog again, so a stale cart price only affects what the badge
// shows, never what is charged.
func (c *cartCommandsImpl) AddLine(ctx context.Context, userID, productID uuid.UUID, size string, quantity int32) (*cart.Cart, error) {
	productView, err := c.productReads.FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Newf("product %s not found", productID), errs.ErrProductNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	loaded, err := c.store.Load(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	image := ""
	if len(productView.Images) > 0 {
		image = productView.Images[0]
	}
	if _, err := loaded.AddLine(productView.ID, productView.Name, image, productView.PriceCents, quantity, size); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidQuantity)
	}

	return c.persist(ctx, userID, loaded)
}

func (c *cartCommandsImpl) SetQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int32) (*cart.Cart, error) {
	loaded, err := c.store.Load(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if _, ok := loaded.FindLine(lineID); !ok && quantity != 0 {
		return nil, errs.ErrCartLineNotFound
	}
	if err := loaded.SetQuantity(lineID, quantity); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidQuantity)
	}

	return c.persist(ctx, userID, loaded)
}

// RemoveLine is idempotent: removing a line that is already gone still
// succeeds and returns the current cart.
func (c *cartCommandsImpl) RemoveLine(ctx context.Context, userID, lineID uuid.UUID) (*cart.Cart, error) {
	loaded, err := c.store.Load(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	loaded.RemoveLine(lineID)
	return c.persist(ctx, userID, loaded)
}

func (c *cartCommandsImpl) Clear(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	if err := c.store.Delete(ctx, userID); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return cart.New(), nil
}

func (c *cartCommandsImpl) persist(ctx context.Context, userID uuid.UUID, loaded *cart.Cart) (*cart.Cart, error) {
	if err := c.store.Save(ctx, userID, loaded); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return loaded, nil
}
