package writerepo

import (
	"context"
	"encoding/json"

	"shoestore-api/internal/domain/order"
	"shoestore-api/internal/infra"
	"shoestore-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create persists the whole aggregate as one row: the snapshot sequence goes
// into a single JSONB column exactly as built in memory.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	items, err := json.Marshal(o.Lines())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode order items", err)
	}

	var id uuid.UUID
	err = r.pool.QueryRow(ctx,
		`INSERT INTO orders (id, user_id, order_items, total_cents, delivery_status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		o.ID(), o.UserID(), items, o.TotalCents(), o.Status().String()).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("order references missing user", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}
	return id, nil
}

// UpdateDeliveryStatus overwrites the stored status unconditionally.
func (r *OrderRepository) UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status order.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE orders SET delivery_status = $1 WHERE id = $2`,
		status.String(), id)
	if err != nil {
		return infra.WrapRepoErr("failed to update delivery status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the order row entirely. Customer cancellation is a hard
// delete, not a status flip.
func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
