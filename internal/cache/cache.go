// Package cache stores computed search and recommendation results. The catalog
// is immutable for the life of the process, so entries only expire by TTL or
// when the catalog is reloaded.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
)

const defaultTTL = 10 * time.Minute

var ErrCacheMiss = errors.New("cache miss")

// Store is a byte-oriented key/value backend.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
}

type Cache struct {
	store Store
	ttl   time.Duration
}

func NewCache(store Store, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{store: store, ttl: ttl}
}

func SearchKey(query string, f domain.Filters) string {
	return fmt.Sprintf("search:q=%s:cat=%s:min=%s:max=%s",
		strconv.Quote(query), strconv.Quote(f.Category), formatBound(f.MinPrice), formatBound(f.MaxPrice))
}

func RecommendKey(preferences []string, excludeID *int64) string {
	exclude := "-"
	if excludeID != nil {
		exclude = strconv.FormatInt(*excludeID, 10)
	}
	quoted := make([]string, len(preferences))
	for i, p := range preferences {
		quoted[i] = strconv.Quote(p)
	}
	return fmt.Sprintf("rec:prefs=%s:exclude=%s", strings.Join(quoted, ","), exclude)
}

func formatBound(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

// GetProducts returns the cached product list for key, with found=false on a miss.
func (c *Cache) GetProducts(ctx context.Context, key string) ([]domain.Product, bool, error) {
	val, err := c.store.Get(ctx, key)
	if errors.Is(err, ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}

	var products []domain.Product
	if err := json.Unmarshal(val, &products); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal products %s: %w", key, err)
	}
	return products, true, nil
}

func (c *Cache) SetProducts(ctx context.Context, key string, products []domain.Product) error {
	val, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to marshal products: %w", err)
	}
	if err := c.store.Set(ctx, key, val, c.ttl); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}

// Invalidate drops every search and recommendation entry. Called when a catalog is (re)loaded.
func (c *Cache) Invalidate(ctx context.Context) error {
	for _, prefix := range []string{"search:", "rec:"} {
		if err := c.store.DeleteByPrefix(ctx, prefix); err != nil {
			return fmt.Errorf("cache invalidate %s: %w", prefix, err)
		}
	}
	return nil
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}
