// Package ranking scores, filters and orders catalog products for search and
// recommendations. Every function is pure and leaves its input untouched.
package ranking

import (
	"strings"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
)

const (
	nameWeight        = 10
	categoryWeight    = 5
	tagWeight         = 3
	descriptionWeight = 1
)

// RelevanceScore is the additive, case-insensitive substring match score of
// query against p. Every matching tag contributes separately.
func RelevanceScore(p domain.Product, query string) int {
	q := strings.ToLower(query)
	score := 0

	if strings.Contains(strings.ToLower(p.Name), q) {
		score += nameWeight
	}
	if strings.Contains(strings.ToLower(p.Category), q) {
		score += categoryWeight
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			score += tagWeight
		}
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		score += descriptionWeight
	}

	return score
}

// matchesText reports whether q (already lowercased) appears in any searchable field.
func matchesText(p domain.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(p.Category), q)
}
