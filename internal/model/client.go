package model

import (
	"context"

	"github.com/actuallystonmai/storefront-assistant/internal/catalog"
	"github.com/actuallystonmai/storefront-assistant/internal/domain"
	"github.com/actuallystonmai/storefront-assistant/internal/intent"
	"github.com/actuallystonmai/storefront-assistant/internal/ranking"
	"github.com/actuallystonmai/storefront-assistant/internal/reply"
)

// Client is the simulated shopping model. It holds only the immutable catalog,
// so one instance can serve concurrent callers.
type Client struct {
	catalog    *catalog.Catalog
	classifier *intent.Classifier
	replies    *reply.Generator
	delay      Delayer
}

type Options struct {
	// Delay runs before every search, recommendation and chat call. Defaults to NoDelay.
	Delay Delayer
	// Rand picks between equivalent reply templates. Defaults to a fixed seed.
	Rand reply.Rand
	// Rules overrides the intent table.
	Rules []intent.Rule
}

func NewClient(c *catalog.Catalog, opts Options) *Client {
	if opts.Delay == nil {
		opts.Delay = NoDelay
	}
	if opts.Rand == nil {
		opts.Rand = reply.NewLockedRand(1)
	}
	return &Client{
		catalog:    c,
		classifier: intent.NewClassifier(opts.Rules...),
		replies:    reply.NewGenerator(opts.Rand),
		delay:      opts.Delay,
	}
}

func (c *Client) Catalog() *catalog.Catalog {
	return c.catalog
}

func (c *Client) Search(ctx context.Context, query string, filters domain.Filters) ([]domain.Product, error) {
	if err := c.delay.Wait(ctx); err != nil {
		return nil, err
	}
	return ranking.Search(c.catalog.Products(), query, filters), nil
}

func (c *Client) Recommend(ctx context.Context, preferences []string, excludeID *int64) ([]domain.Product, error) {
	if err := c.delay.Wait(ctx); err != nil {
		return nil, err
	}
	return ranking.Recommend(c.catalog.Products(), preferences, excludeID), nil
}

// FrequentlyBoughtWith does not wait; the storefront calls it synchronously.
func (c *Client) FrequentlyBoughtWith(productID int64) []domain.Product {
	return ranking.FrequentlyBoughtWith(c.catalog.Products(), productID)
}

func (c *Client) ClassifyAndRespond(ctx context.Context, message string, chat domain.ChatContext) (domain.ChatResponse, error) {
	if err := c.delay.Wait(ctx); err != nil {
		return domain.ChatResponse{}, err
	}
	return c.replies.Generate(c.classifier.Classify(message), message, chat), nil
}
