package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/actuallystonmai/storefront-assistant/internal/cache"
	"github.com/actuallystonmai/storefront-assistant/internal/cart"
	"github.com/actuallystonmai/storefront-assistant/internal/domain"
	"github.com/actuallystonmai/storefront-assistant/internal/model"
	"github.com/rs/zerolog"
)

const (
	batchConcurrency = 10
	maxBatchSize     = 100
)

var ErrBatchTooLarge = fmt.Errorf("batch exceeds %d requests", maxBatchSize)

type Service struct {
	cache       *cache.Cache
	modelClient *model.Client
	log         zerolog.Logger
}

func NewService(c *cache.Cache, modelClient *model.Client, log zerolog.Logger) *Service {
	return &Service{
		cache:       c,
		modelClient: modelClient,
		log:         log.With().Str("component", "service").Logger(),
	}
}

func (s *Service) Search(ctx context.Context, query string, filters domain.Filters) ([]domain.Product, error) {
	key := cache.SearchKey(query, filters)
	products, _, err := s.cached(ctx, key, func() ([]domain.Product, error) {
		return s.modelClient.Search(ctx, query, filters)
	})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return products, nil
}

func (s *Service) Recommend(ctx context.Context, preferences []string, excludeID *int64) ([]domain.Product, error) {
	result, err := s.GetRecommendations(ctx, domain.RecommendationRequest{
		Preferences:      preferences,
		ExcludeProductID: excludeID,
	})
	if err != nil {
		return nil, err
	}
	return result.Products, nil
}

// GetRecommendations is Recommend with cache metadata.
func (s *Service) GetRecommendations(ctx context.Context, req domain.RecommendationRequest) (*domain.RecommendationResult, error) {
	key := cache.RecommendKey(req.Preferences, req.ExcludeProductID)
	products, hit, err := s.cached(ctx, key, func() ([]domain.Product, error) {
		return s.modelClient.Recommend(ctx, req.Preferences, req.ExcludeProductID)
	})
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}
	return &domain.RecommendationResult{Products: products, CacheHit: hit}, nil
}

// cached serves key from the cache or computes and stores it.
// Cache failures are logged and never fail the request.
func (s *Service) cached(ctx context.Context, key string, compute func() ([]domain.Product, error)) ([]domain.Product, bool, error) {
	products, found, err := s.cache.GetProducts(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache get failed")
	}
	if found {
		return products, true, nil
	}

	products, err = compute()
	if err != nil {
		return nil, false, err
	}

	if cacheErr := s.cache.SetProducts(ctx, key, products); cacheErr != nil {
		s.log.Warn().Err(cacheErr).Str("key", key).Msg("cache set failed")
	}
	return products, false, nil
}

func (s *Service) FrequentlyBoughtWith(ctx context.Context, productID int64) []domain.Product {
	return s.modelClient.FrequentlyBoughtWith(productID)
}

func (s *Service) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	p, ok := s.modelClient.Catalog().ByID(id)
	if !ok {
		return domain.Product{}, fmt.Errorf("product %d: %w", id, domain.ErrProductNotFound)
	}
	return p, nil
}

func (s *Service) ClassifyAndRespond(ctx context.Context, message string, chat domain.ChatContext) (domain.ChatResponse, error) {
	resp, err := s.modelClient.ClassifyAndRespond(ctx, message, chat)
	if err != nil {
		return domain.ChatResponse{}, fmt.Errorf("classify: %w", err)
	}
	s.log.Debug().Str("intent", string(resp.Intent)).Int("cart_items", len(chat.CartItems)).Msg("chat reply")
	return resp, nil
}

// BuildChatContext resolves client cart lines against the catalog. A nil total
// is replaced by the computed subtotal.
func (s *Service) BuildChatContext(ctx context.Context, user *domain.User, lines []domain.CartLine, total *float64) (domain.ChatContext, error) {
	items, err := cart.Resolve(s.modelClient.Catalog(), lines)
	if err != nil {
		return domain.ChatContext{}, err
	}
	chat := domain.ChatContext{
		User:      user,
		CartItems: items,
		HasItems:  len(items) > 0,
	}
	if total != nil {
		chat.CartTotal = *total
	} else {
		chat.CartTotal = cart.Subtotal(items)
	}
	return chat, nil
}

func (s *Service) QuoteCart(ctx context.Context, lines []domain.CartLine) (domain.CartQuote, error) {
	items, err := cart.Resolve(s.modelClient.Catalog(), lines)
	if err != nil {
		return domain.CartQuote{}, fmt.Errorf("quote cart: %w", err)
	}
	return cart.Quote(items), nil
}

func (s *Service) BatchRecommend(ctx context.Context, reqs []domain.RecommendationRequest) (*domain.BatchResponse, error) {
	if len(reqs) > maxBatchSize {
		return nil, ErrBatchTooLarge
	}
	start := time.Now()

	// Process requests concurrently with bounded worker pool
	results := make([]domain.BatchItemResult, len(reqs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, batchConcurrency) // semaphore

	for i, req := range reqs {
		wg.Add(1)
		go func(idx int, req domain.RecommendationRequest) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			results[idx] = s.processBatchItem(ctx, idx, req)
		}(i, req)
	}
	wg.Wait()

	// summary
	successCount := 0
	failedCount := 0
	for _, r := range results {
		if r.Status == domain.StatusSuccess {
			successCount++
		} else {
			failedCount++
		}
	}

	return &domain.BatchResponse{
		Results: results,
		Summary: domain.BatchSummary{
			SuccessCount:     successCount,
			FailedCount:      failedCount,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		},
		Metadata: domain.BatchMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

func (s *Service) processBatchItem(ctx context.Context, idx int, req domain.RecommendationRequest) domain.BatchItemResult {
	result, err := s.GetRecommendations(ctx, req)
	if err != nil {
		s.log.Error().Err(err).Int("index", idx).Msg("batch item failed")
		code, msg := categorizeError(err)
		return domain.BatchItemResult{
			Index:   idx,
			Status:  domain.StatusFailed,
			Error:   code,
			Message: msg,
		}
	}

	recs := result.Products
	if recs == nil {
		recs = []domain.Product{}
	}
	return domain.BatchItemResult{
		Index:           idx,
		Recommendations: recs,
		Status:          domain.StatusSuccess,
	}
}

// Handle response error
func categorizeError(err error) (string, string) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "request_timeout", "request timed out before recommendations were ready"
	}
	if errors.Is(err, domain.ErrProductNotFound) {
		return "product_not_found", "product not found"
	}
	return "internal_error", "an unexpected error occurred"
}
