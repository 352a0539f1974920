package writerepo

import (
	"context"

	"shoestore-api/internal/domain/user"
	"shoestore-api/internal/infra"
	"shoestore-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (id, full_name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		u.ID(), u.FullName().Value(), u.Email().Value(), u.PasswordHash(), u.Role().String()).
		Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1 WHERE id = $2`, passwordHash, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
