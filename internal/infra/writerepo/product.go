package writerepo

import (
	"context"

	"shoestore-api/internal/domain/product"
	"shoestore-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`INSERT INTO products
			(id, product_name, category, price_cents, discount_percentage, stock_quantity,
			 product_images, description, is_featured, available_sizes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		p.ID(), p.Name(), p.Category(), p.PriceCents(), p.DiscountPercentage(),
		p.StockQuantity(), p.Images(), p.Description(), p.IsFeatured(), p.AvailableSizes()).
		Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create product", err)
	}
	return id, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE products SET
			product_name = $1, category = $2, price_cents = $3, discount_percentage = $4,
			stock_quantity = $5, product_images = $6, description = $7, is_featured = $8,
			available_sizes = $9, updated_at = now()
		 WHERE id = $10`,
		p.Name(), p.Category(), p.PriceCents(), p.DiscountPercentage(), p.StockQuantity(),
		p.Images(), p.Description(), p.IsFeatured(), p.AvailableSizes(), p.ID())
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}
