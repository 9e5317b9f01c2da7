// Package cart prices a shopping cart the way the storefront checkout does.
package cart

import (
	"fmt"
	"math"

	"github.com/actuallystonmai/storefront-assistant/internal/catalog"
	"github.com/actuallystonmai/storefront-assistant/internal/domain"
)

const (
	FreeShippingOver = 50.0
	FlatShipping     = 5.99
	TaxRate          = 0.08
)

// Resolve turns client cart lines into catalog items.
func Resolve(c *catalog.Catalog, lines []domain.CartLine) ([]domain.CartItem, error) {
	items := make([]domain.CartItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("product %d quantity %d: %w", line.ProductID, line.Quantity, domain.ErrInvalidQuantity)
		}
		p, ok := c.ByID(line.ProductID)
		if !ok {
			return nil, fmt.Errorf("product %d: %w", line.ProductID, domain.ErrProductNotFound)
		}
		items = append(items, domain.CartItem{Product: p, Quantity: line.Quantity})
	}
	return items, nil
}

func Subtotal(items []domain.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return roundCents(total)
}

// Quote prices items: shipping is free above FreeShippingOver, tax is TaxRate of the subtotal.
func Quote(items []domain.CartItem) domain.CartQuote {
	q := domain.CartQuote{Items: items}
	for _, item := range items {
		q.ItemCount += item.Quantity
	}
	if len(items) == 0 {
		q.Items = []domain.CartItem{}
		return q
	}

	q.Subtotal = Subtotal(items)
	if q.Subtotal <= FreeShippingOver {
		q.Shipping = FlatShipping
	}
	q.Tax = roundCents(q.Subtotal * TaxRate)
	q.Total = roundCents(q.Subtotal + q.Shipping + q.Tax)
	return q
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
