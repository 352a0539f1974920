package readstore

import (
	"context"

	"shoestore-api/internal/domain/product"
	"shoestore-api/internal/infra"
	"shoestore-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardReadStore serves the back-office aggregate projections. Pure
// reads; nothing here touches order lifecycle state.
type DashboardReadStore struct {
	pool *pgxpool.Pool
}

func NewDashboardReadStore(pool *pgxpool.Pool) *DashboardReadStore {
	return &DashboardReadStore{pool: pool}
}

func (r *DashboardReadStore) GetStats(ctx context.Context) (*queries.DashboardStats, error) {
	var stats queries.DashboardStats
	err := r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			(SELECT COALESCE(SUM(total_cents), 0) FROM orders),
			(SELECT COUNT(*) FROM products WHERE stock_quantity < $1)`,
		product.LowStockThreshold).
		Scan(&stats.TotalProducts, &stats.TotalOrders, &stats.TotalSalesCents, &stats.LowStockItems)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load dashboard stats", err)
	}
	return &stats, nil
}

func (r *DashboardReadStore) GetPaymentsOverview(ctx context.Context) ([]*queries.PaymentOverviewItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT o.id, u.full_name, u.email, o.total_cents, o.payment_status, o.created_at
		 FROM orders o
		 LEFT JOIN users u ON o.user_id = u.id
		 ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load payments overview", err)
	}
	defer rows.Close()

	var result []*queries.PaymentOverviewItem
	for rows.Next() {
		var item queries.PaymentOverviewItem
		if scanErr := rows.Scan(
			&item.OrderID, &item.CustomerName, &item.CustomerEmail,
			&item.TotalCents, &item.PaymentStatus, &item.CreatedAt,
		); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", scanErr)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment rows", err)
	}
	return result, nil
}
