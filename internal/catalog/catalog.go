// Package catalog holds the read-only product list the assistant searches
// and recommends over.
package catalog

import (
	"fmt"
	"slices"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
)

// Catalog is immutable after New and safe for concurrent readers.
type Catalog struct {
	products []domain.Product
	byID     map[int64]int
}

// New copies products into a catalog, keeping their order. Product ids must be unique.
func New(products []domain.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[int64]int, len(products)),
	}
	for _, p := range products {
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("product %d: %w", p.ID, domain.ErrDuplicateProduct)
		}
		p.Tags = slices.Clone(p.Tags)
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Products returns the catalog in its original order.
// The slice is a copy; tag slices are shared and must not be modified.
func (c *Catalog) Products() []domain.Product {
	return slices.Clone(c.products)
}

func (c *Catalog) Len() int {
	return len(c.products)
}

func (c *Catalog) ByID(id int64) (domain.Product, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[idx], true
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
