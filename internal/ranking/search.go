package ranking

import (
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
)

// Search returns the products matching query and filters. A non-empty query
// orders results by RelevanceScore, highest first, keeping catalog order on ties.
// An empty query with no filters returns every product in catalog order.
func Search(products []domain.Product, query string, filters domain.Filters) []domain.Product {
	if query == "" && filters.IsZero() {
		return slices.Clone(products)
	}

	q := strings.ToLower(query)
	minPrice, hasMin := bound(filters.MinPrice)
	maxPrice, hasMax := bound(filters.MaxPrice)

	type scored struct {
		product domain.Product
		score   int
	}
	matches := make([]scored, 0, len(products))

	for _, p := range products {
		if query != "" && !matchesText(p, q) {
			continue
		}
		if filters.Category != "" && p.Category != filters.Category {
			continue
		}
		if hasMin && p.Price < minPrice {
			continue
		}
		if hasMax && p.Price > maxPrice {
			continue
		}

		s := scored{product: p}
		if query != "" {
			s.score = RelevanceScore(p, q)
		}
		matches = append(matches, s)
	}

	if query != "" {
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].score > matches[j].score
		})
	}

	results := make([]domain.Product, len(matches))
	for i, m := range matches {
		results[i] = m.product
	}
	return results
}

// bound treats nil, NaN and zero as "no constraint", matching the storefront's
// falsy check on price inputs.
func bound(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) || *v == 0 {
		return 0, false
	}
	return *v, true
}
