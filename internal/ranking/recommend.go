package ranking

import (
	"sort"
	"strings"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
)

const (
	MaxRecommendations = 4
	MaxBoughtTogether  = 2
)

// Recommend ranks products by preference overlap and returns at most
// MaxRecommendations of them. excludeID, when set, is removed first.
// Products matching any preference come first; order within each group is kept.
func Recommend(products []domain.Product, preferences []string, excludeID *int64) []domain.Product {
	recs := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if excludeID != nil && p.ID == *excludeID {
			continue
		}
		recs = append(recs, p)
	}

	if len(preferences) > 0 {
		scores := make(map[int64]int, len(recs))
		for _, p := range recs {
			scores[p.ID] = preferenceScore(p, preferences)
		}
		sort.SliceStable(recs, func(i, j int) bool {
			return scores[recs[i].ID] > scores[recs[j].ID]
		})
	}

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}

// preferenceScore is 1 when any preference is a substring of the category or
// of a tag. The match is case-sensitive.
func preferenceScore(p domain.Product, preferences []string) int {
	for _, pref := range preferences {
		if strings.Contains(p.Category, pref) {
			return 1
		}
		for _, tag := range p.Tags {
			if strings.Contains(tag, pref) {
				return 1
			}
		}
	}
	return 0
}

// FrequentlyBoughtWith returns up to MaxBoughtTogether other products from the
// same category as productID, in catalog order. Unknown ids yield an empty list.
func FrequentlyBoughtWith(products []domain.Product, productID int64) []domain.Product {
	var current *domain.Product
	for i := range products {
		if products[i].ID == productID {
			current = &products[i]
			break
		}
	}
	if current == nil {
		return []domain.Product{}
	}

	out := []domain.Product{}
	for _, p := range products {
		if p.ID == productID || p.Category != current.Category {
			continue
		}
		out = append(out, p)
		if len(out) == MaxBoughtTogether {
			break
		}
	}
	return out
}
