package readstore

import (
	"context"

	"shoestore-api/internal/infra"
	"shoestore-api/internal/pkg/pgconv"
	"shoestore-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.pool.QueryRow(ctx,
		`SELECT id, full_name, email, role FROM users WHERE id = $1`, id).
		Scan(&view.ID, &view.FullName, &view.Email, &view.Role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

// FindByEmail returns the user view together with the stored password hash
// for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		passwordHash string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, full_name, email, role, password_hash FROM users WHERE email = $1`, email).
		Scan(&view.ID, &view.FullName, &view.Email, &view.Role, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, passwordHash, nil
}
