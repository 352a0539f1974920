package queries

import (
	"context"

	"shoestore-api/internal/infra"
	"shoestore-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	FindAll(ctx context.Context) ([]*ProductView, error)
}

type ProductQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	ListAll(ctx context.Context) ([]*ProductView, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *productQueriesImpl) ListAll(ctx context.Context) ([]*ProductView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
