package model

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/actuallystonmai/storefront-assistant/internal/catalog"
	"github.com/actuallystonmai/storefront-assistant/internal/domain"
	"github.com/actuallystonmai/storefront-assistant/internal/reply"
)

type firstTemplate struct{}

func (firstTemplate) Intn(int) int { return 0 }

func TestSearch(t *testing.T) {
	client := NewClient(catalog.Default(), Options{})

	results, err := client.Search(context.Background(), "wireless", domain.Filters{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ID != 1 || results[1].ID != 5 {
		t.Errorf("expected [1 5], got [%d %d]", results[0].ID, results[1].ID)
	}
}

func TestRecommend(t *testing.T) {
	client := NewClient(catalog.Default(), Options{})
	exclude := int64(1)

	recs, err := client.Recommend(context.Background(), []string{"organic"}, &exclude)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if len(recs) != 4 {
		t.Fatalf("expected 4 recommendations, got %d", len(recs))
	}
	if recs[0].ID != 3 || recs[1].ID != 6 {
		t.Errorf("expected organic products first, got %d and %d", recs[0].ID, recs[1].ID)
	}
	for _, p := range recs {
		if p.ID == exclude {
			t.Error("excluded product should not be recommended")
		}
	}
}

func TestFrequentlyBoughtWith(t *testing.T) {
	client := NewClient(catalog.Default(), Options{})

	if got := client.FrequentlyBoughtWith(2); len(got) != 2 || got[0].ID != 1 || got[1].ID != 5 {
		t.Errorf("unexpected bought-together for 2: %v", got)
	}
	if got := client.FrequentlyBoughtWith(404); len(got) != 0 {
		t.Errorf("expected no products for unknown id, got %d", len(got))
	}
}

func TestClassifyAndRespond(t *testing.T) {
	client := NewClient(catalog.Default(), Options{Rand: firstTemplate{}})
	ctx := context.Background()

	resp, err := client.ClassifyAndRespond(ctx, "hello, where is my order", domain.ChatContext{})
	if err != nil {
		t.Fatalf("ClassifyAndRespond failed: %v", err)
	}
	if resp.Intent != domain.IntentGreeting {
		t.Errorf("expected greeting, got %s", resp.Intent)
	}
	if resp.Message != reply.AnonymousGreetings[0] {
		t.Errorf("unexpected greeting %q", resp.Message)
	}

	resp, err = client.ClassifyAndRespond(ctx, "I want a refund", domain.ChatContext{})
	if err != nil {
		t.Fatalf("ClassifyAndRespond failed: %v", err)
	}
	if resp.Intent != domain.IntentReturns {
		t.Errorf("expected returns, got %s", resp.Intent)
	}
	if len(resp.Actions) != 1 || resp.Actions[0].Label != "Start Return" {
		t.Errorf("expected Start Return action, got %v", resp.Actions)
	}

	resp, err = client.ClassifyAndRespond(ctx, "show my cart", domain.ChatContext{HasItems: false})
	if err != nil {
		t.Fatalf("ClassifyAndRespond failed: %v", err)
	}
	if resp.Intent != domain.IntentCartHelp || len(resp.Actions) != 2 || resp.Actions[1].Label != "Browse Products" {
		t.Errorf("expected empty-cart browse branch, got %+v", resp)
	}
}

func TestCancelledContext(t *testing.T) {
	client := NewClient(catalog.Default(), Options{Delay: FixedDelay(time.Hour)})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Search(ctx, "tea", domain.Filters{}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if _, err := client.ClassifyAndRespond(ctx, "hello", domain.ChatContext{}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDelayHonoursDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := FixedDelay(time.Minute).Wait(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestJitterDelayBounds(t *testing.T) {
	j := NewJitterDelay(time.Millisecond, 3*time.Millisecond, 42)

	for i := 0; i < 5; i++ {
		start := time.Now()
		if err := j.Wait(context.Background()); err != nil {
			t.Fatalf("Wait failed: %v", err)
		}
		if elapsed := time.Since(start); elapsed < time.Millisecond {
			t.Errorf("waited %v, expected at least 1ms", elapsed)
		}
	}

	inverted := NewJitterDelay(5*time.Millisecond, time.Millisecond, 1)
	if inverted.Max != inverted.Min {
		t.Errorf("expected max clamped to min, got %v", inverted.Max)
	}
}
