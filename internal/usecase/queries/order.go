package queries

import (
	"context"

	"shoestore-api/internal/domain/user"
	"shoestore-api/internal/infra"
	"shoestore-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderReadStore is the read-side persistence port for orders.
type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
	FindAllWithCustomer(ctx context.Context) ([]*AdminOrderListItem, error)
}

type OrderQueries interface {
	// GetByID returns the order if the actor owns it or is an admin.
	// Ownership failures surface as not-found so other users' orders stay
	// unguessable.
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
	ListAll(ctx context.Context) ([]*AdminOrderListItem, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if view.UserID != actorID && actorRole != user.RoleAdmin {
		return nil, errs.ErrOrderNotFound
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error) {
	views, err := q.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *orderQueriesImpl) ListAll(ctx context.Context) ([]*AdminOrderListItem, error) {
	items, err := q.store.FindAllWithCustomer(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
