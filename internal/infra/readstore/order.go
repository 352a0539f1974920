package readstore

import (
	"context"
	"encoding/json"

	"shoestore-api/internal/infra"
	"shoestore-api/internal/pkg/pgconv"
	"shoestore-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderReadStore struct {
	pool *pgxpool.Pool
}

func NewOrderReadStore(pool *pgxpool.Pool) *OrderReadStore {
	return &OrderReadStore{pool: pool}
}

const orderColumns = `id, user_id, order_items, total_cents, delivery_status, payment_status, created_at`

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	view, err := scanOrderView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}
	return view, nil
}

func (r *OrderReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.OrderView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find orders by user", err)
	}
	defer rows.Close()

	var result []*queries.OrderView
	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}
	return result, nil
}

// FindAllWithCustomer joins purchaser display data for the back-office list,
// newest first.
func (r *OrderReadStore) FindAllWithCustomer(ctx context.Context) ([]*queries.AdminOrderListItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT o.id, o.user_id, o.order_items, o.total_cents, o.delivery_status, o.payment_status, o.created_at,
		        u.full_name, u.email
		 FROM orders o
		 JOIN users u ON o.user_id = u.id
		 ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders with customer", err)
	}
	defer rows.Close()

	var result []*queries.AdminOrderListItem
	for rows.Next() {
		var (
			item     queries.AdminOrderListItem
			rawItems []byte
		)
		if scanErr := rows.Scan(
			&item.ID, &item.UserID, &rawItems, &item.TotalCents,
			&item.DeliveryStatus, &item.PaymentStatus, &item.CreatedAt,
			&item.CustomerName, &item.CustomerEmail,
		); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan admin order row", scanErr)
		}
		if unmarshalErr := json.Unmarshal(rawItems, &item.Items); unmarshalErr != nil {
			return nil, infra.WrapRepoErr("failed to decode order items", unmarshalErr)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate admin order rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderView(row rowScanner) (*queries.OrderView, error) {
	var (
		view     queries.OrderView
		rawItems []byte
	)
	if err := row.Scan(
		&view.ID, &view.UserID, &rawItems, &view.TotalCents,
		&view.DeliveryStatus, &view.PaymentStatus, &view.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rawItems, &view.Items); err != nil {
		return nil, err
	}
	return &view, nil
}
