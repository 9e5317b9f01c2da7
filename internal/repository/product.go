package repository

import (
	"context"
	"fmt"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, name, price::float8, category, description, image, stock, rating::float8, tags`

// List every product in catalog order
func (r *Repository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+productColumns+`
		FROM products
		ORDER BY position, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var items []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over products: %w", err)
	}
	return items, nil
}

// Count products
func (r *Repository) CountProducts(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Description, &p.Image, &p.Stock, &p.Rating, &p.Tags)
	if err != nil {
		return domain.Product{}, fmt.Errorf("scan product: %w", err)
	}
	return p, nil
}
