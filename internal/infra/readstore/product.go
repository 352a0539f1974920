package readstore

import (
	"context"

	"shoestore-api/internal/infra"
	"shoestore-api/internal/pkg/pgconv"
	"shoestore-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductReadStore struct {
	pool *pgxpool.Pool
}

func NewProductReadStore(pool *pgxpool.Pool) *ProductReadStore {
	return &ProductReadStore{pool: pool}
}

const productColumns = `id, product_name, category, price_cents, discount_percentage, stock_quantity,
	product_images, description, is_featured, available_sizes, created_at, updated_at`

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	view, err := scanProductView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	return view, nil
}

func (r *ProductReadStore) FindAll(ctx context.Context) ([]*queries.ProductView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var result []*queries.ProductView
	for rows.Next() {
		view, scanErr := scanProductView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return result, nil
}

func scanProductView(row rowScanner) (*queries.ProductView, error) {
	var view queries.ProductView
	if err := row.Scan(
		&view.ID, &view.Name, &view.Category, &view.PriceCents, &view.DiscountPercentage,
		&view.StockQuantity, &view.Images, &view.Description, &view.IsFeatured,
		&view.AvailableSizes, &view.CreatedAt, &view.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &view, nil
}
