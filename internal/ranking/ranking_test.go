package ranking

import (
	"math"
	"strings"
	"testing"

	"github.com/actuallystonmai/storefront-assistant/internal/catalog"
	"github.com/actuallystonmai/storefront-assistant/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []domain.Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func TestRelevanceScore(t *testing.T) {
	products := catalog.Default().Products()

	tests := []struct {
		name  string
		idx   int
		query string
		want  int
	}{
		{"name tag and description", 0, "wireless", 14},
		{"case insensitive", 0, "WIRELESS", 14},
		{"tag only", 2, "organic", 3},
		{"name tag description", 5, "organic", 14},
		{"category only", 2, "food", 5},
		{"description only", 5, "premium", 1},
		{"no match", 3, "coffee", 0},
		{"name and tag", 3, "office", 13},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RelevanceScore(products[tc.idx], tc.query))
		})
	}
}

func TestSearch_EmptyQueryNoFilters(t *testing.T) {
	products := catalog.Default().Products()
	assert.Equal(t, products, Search(products, "", domain.Filters{}))
}

func TestSearch_OrdersByRelevance(t *testing.T) {
	products := catalog.Default().Products()

	tests := []struct {
		query string
		want  []int64
	}{
		{"wireless", []int64{1, 5}},
		{"organic", []int64{6, 3}},
		{"premium", []int64{3, 6}},
		{"health", []int64{2, 6}},
		{"FOOD", []int64{3, 6}},
		{"nothing like this", []int64{}},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(Search(products, tc.query, domain.Filters{})))
		})
	}
}

func TestSearch_Filters(t *testing.T) {
	products := catalog.Default().Products()

	tests := []struct {
		name    string
		query   string
		filters domain.Filters
		want    []int64
	}{
		{"category", "", domain.Filters{Category: "food"}, []int64{3, 6}},
		{"category is exact", "", domain.Filters{Category: "Food"}, []int64{}},
		{"price range", "", domain.Filters{MinPrice: ptr(30.0), MaxPrice: ptr(100.0)}, []int64{1, 5}},
		{"min only", "", domain.Filters{MinPrice: ptr(250.0)}, []int64{4}},
		{"zero bound unconstrained", "", domain.Filters{MaxPrice: ptr(0.0)}, []int64{1, 2, 3, 4, 5, 6}},
		{"nan bound unconstrained", "", domain.Filters{MinPrice: ptr(math.NaN())}, []int64{1, 2, 3, 4, 5, 6}},
		{"negative max matches nothing", "", domain.Filters{MaxPrice: ptr(-1.0)}, []int64{}},
		{"query and category", "health", domain.Filters{Category: "food"}, []int64{6}},
		{"query and price", "wireless", domain.Filters{MaxPrice: ptr(50.0)}, []int64{5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(Search(products, tc.query, tc.filters)))
		})
	}
}

func TestSearch_NameSubstringScoresAtLeastTen(t *testing.T) {
	products := catalog.Default().Products()

	for _, p := range products {
		for _, q := range []string{p.Name, strings.ToLower(p.Name[:4]), strings.Fields(p.Name)[1]} {
			results := Search(products, q, domain.Filters{})
			assert.Contains(t, ids(results), p.ID, "query %q", q)
			assert.GreaterOrEqual(t, RelevanceScore(p, q), 10, "query %q", q)
		}
	}
}

func TestSearch_MatchesReferenceFilter(t *testing.T) {
	products := catalog.Default().Products()
	queries := []string{"", "a", "wireless", "tea", "e", "office", "zzz"}
	filterSets := []domain.Filters{
		{},
		{Category: "electronics"},
		{MinPrice: ptr(20.0)},
		{MaxPrice: ptr(99.99)},
		{Category: "food", MinPrice: ptr(19.0), MaxPrice: ptr(30.0)},
	}

	reference := func(q string, f domain.Filters) map[int64]bool {
		out := make(map[int64]bool)
		lq := strings.ToLower(q)
		for _, p := range products {
			text := q == "" || strings.Contains(strings.ToLower(p.Name), lq) ||
				strings.Contains(strings.ToLower(p.Description), lq) ||
				strings.Contains(strings.ToLower(p.Category), lq)
			for _, tag := range p.Tags {
				text = text || strings.Contains(strings.ToLower(tag), lq)
			}
			if !text {
				continue
			}
			if f.Category != "" && p.Category != f.Category {
				continue
			}
			if f.MinPrice != nil && p.Price < *f.MinPrice {
				continue
			}
			if f.MaxPrice != nil && p.Price > *f.MaxPrice {
				continue
			}
			out[p.ID] = true
		}
		return out
	}

	for _, q := range queries {
		for _, f := range filterSets {
			got := make(map[int64]bool)
			for _, p := range Search(products, q, f) {
				got[p.ID] = true
			}
			assert.Equal(t, reference(q, f), got, "query %q filters %+v", q, f)
		}
	}
}

func TestSearch_Idempotent(t *testing.T) {
	products := catalog.Default().Products()
	f := domain.Filters{MaxPrice: ptr(260.0)}

	first := Search(products, "e", f)
	second := Search(products, "e", f)
	assert.Equal(t, first, second)
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	products := catalog.Default().Products()
	before := ids(products)

	Search(products, "organic", domain.Filters{})
	assert.Equal(t, before, ids(products))
}

func TestRecommend(t *testing.T) {
	products := catalog.Default().Products()

	tests := []struct {
		name    string
		prefs   []string
		exclude *int64
		want    []int64
	}{
		{"no preferences", nil, nil, []int64{1, 2, 3, 4}},
		{"no preferences with exclusion", nil, ptr(int64(2)), []int64{1, 3, 4, 5}},
		{"category preference", []string{"electronics"}, nil, []int64{1, 2, 5, 3}},
		{"tag preference", []string{"health"}, nil, []int64{2, 6, 1, 3}},
		{"preference with exclusion", []string{"organic"}, ptr(int64(6)), []int64{3, 1, 2, 4}},
		{"substring of tag", []string{"smart"}, nil, []int64{2, 1, 3, 4}},
		{"case sensitive", []string{"Electronics"}, nil, []int64{1, 2, 3, 4}},
		{"unknown exclusion", nil, ptr(int64(42)), []int64{1, 2, 3, 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(Recommend(products, tc.prefs, tc.exclude)))
		})
	}
}

func TestRecommend_StableWithinGroups(t *testing.T) {
	var products []domain.Product
	for i := 1; i <= 6; i++ {
		category := "toys"
		if i%2 == 1 {
			category = "books"
		}
		products = append(products, domain.Product{ID: int64(i), Category: category})
	}

	recs := Recommend(products, []string{"books"}, nil)
	require.Len(t, recs, MaxRecommendations)
	assert.Equal(t, []int64{1, 3, 5, 2}, ids(recs))
}

func TestFrequentlyBoughtWith(t *testing.T) {
	products := catalog.Default().Products()

	assert.Equal(t, []int64{2, 5}, ids(FrequentlyBoughtWith(products, 1)))
	assert.Equal(t, []int64{6}, ids(FrequentlyBoughtWith(products, 3)))
	assert.Empty(t, FrequentlyBoughtWith(products, 4))

	unknown := FrequentlyBoughtWith(products, 999)
	require.NotNil(t, unknown)
	assert.Empty(t, unknown)
}
