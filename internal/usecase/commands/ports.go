package commands

import (
	"context"
	"time"

	"shoestore-api/internal/domain/cart"
	"shoestore-api/internal/domain/order"
	"shoestore-api/internal/domain/product"
	"shoestore-api/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side persistence ports. Read access inside commands goes through the
// queries.*ReadStore interfaces so both sides share one view shape.

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) (uuid.UUID, error)
	UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status order.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) (uuid.UUID, error)
	Update(ctx context.Context, p *product.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

type CartStore interface {
	Load(ctx context.Context, userID uuid.UUID) (*cart.Cart, error)
	Save(ctx context.Context, userID uuid.UUID, c *cart.Cart) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type ResetTokenStore interface {
	Put(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	Take(ctx context.Context, token string) (uuid.UUID, error)
}
