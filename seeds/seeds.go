package seeds

import (
	"context"
	"fmt"
	"strings"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
	"github.com/actuallystonmai/storefront-assistant/internal/repository"
	"github.com/rs/zerolog"
)

// Setup replaces the products table with products, preserving their order.
func Setup(ctx context.Context, db repository.DB, products []domain.Product, log zerolog.Logger) error {
	// Truncate existing data before insert
	log.Info().Msg("[seed] truncating existing products")
	if _, err := db.Exec(ctx, `TRUNCATE products`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Info().Int("count", len(products)).Msg("[seed] inserting products")
	if err := seedProducts(ctx, db, products); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	log.Info().Msg("[seed] seeding complete")
	return nil
}

func seedProducts(ctx context.Context, db repository.DB, products []domain.Product) error {
	query, args := buildInsert(products)
	if query == "" {
		return nil
	}
	_, err := db.Exec(ctx, query, args...)
	return err
}

func buildInsert(products []domain.Product) (string, []any) {
	rows := []string{}
	args := []any{}

	for i, p := range products {
		base := len(args)
		placeholders := make([]string, 10)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", base+j+1)
		}
		rows = append(rows, "("+strings.Join(placeholders, ", ")+")")

		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		args = append(args, p.ID, i, p.Name, p.Price, p.Category, p.Description, p.Image, p.Stock, p.Rating, tags)
	}

	if len(rows) == 0 {
		return "", nil
	}

	query := "INSERT INTO products (id, position, name, price, category, description, image, stock, rating, tags) VALUES " +
		strings.Join(rows, ", ")
	return query, args
}
