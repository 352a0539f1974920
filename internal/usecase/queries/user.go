package queries

import (
	"context"
	"errors"

	"shoestore-api/internal/infra"
	"shoestore-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
