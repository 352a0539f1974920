package commands

import (
	"context"

	"shoestore-api/internal/domain/product"
	"shoestore-api/internal/infra"
	"shoestore-api/internal/pkg/errs"
	"shoestore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// ProductInput is an admin catalog submission. PriceCents is the list price;
// the stored sale price is derived from it together with DiscountPercentage
// when the entity is built.
type ProductInput struct {
	Name               string
	Category           string
	PriceCents         int64
	DiscountPercentage float64
	StockQuantity      int32
	Images             []string
	Description        string
	IsFeatured         bool
	AvailableSizes     []string
}

type ProductCommands interface {
	Create(ctx context.Context, in ProductInput) (*queries.ProductView, error)
	Update(ctx context.Context, id uuid.UUID, in ProductInput) (*queries.ProductView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productCommandsImpl struct {
	repo  ProductRepository
	reads queries.ProductReadStore
}

func NewProductCommands(repo ProductRepository, reads queries.ProductReadStore) ProductCommands {
	return &productCommandsImpl{repo: repo, reads: reads}
}

func (c *productCommandsImpl) Create(ctx context.Context, in ProductInput) (*queries.ProductView, error) {
	entity, err := product.NewProduct(
		in.Name, in.Category, in.PriceCents, in.DiscountPercentage,
		in.StockQuantity, in.Images, in.Description, in.IsFeatured, in.AvailableSizes,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := c.repo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.reads.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Update replaces the catalog entry wholesale. The discount is reapplied to
// the submitted list price, so resubmitting a previously stored (already
// discounted) price would discount it twice; clients send the list price.
func (c *productCommandsImpl) Update(ctx context.Context, id uuid.UUID, in ProductInput) (*queries.ProductView, error) {
	existing, err := c.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	fresh, err := product.NewProduct(
		in.Name, in.Category, in.PriceCents, in.DiscountPercentage,
		in.StockQuantity, in.Images, in.Description, in.IsFeatured, in.AvailableSizes,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity := product.ReconstructProduct(
		existing.ID, fresh.Name(), fresh.Category(),
		fresh.PriceCents(), fresh.DiscountPercentage(), fresh.StockQuantity(),
		fresh.Images(), fresh.Description(), fresh.IsFeatured(),
		fresh.AvailableSizes(), existing.CreatedAt, existing.UpdatedAt,
	)

	if err := c.repo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.reads.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Delete removes the catalog entry. Existing orders keep their snapshots and
// are unaffected.
func (c *productCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrProductNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
