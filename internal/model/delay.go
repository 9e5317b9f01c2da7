package model

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Delayer is the suspend point standing in for inference latency.
// Wait returns ctx.Err() if the context ends first.
type Delayer interface {
	Wait(ctx context.Context) error
}

type noDelay struct{}

// NoDelay returns immediately unless ctx is already done.
var NoDelay Delayer = noDelay{}

func (noDelay) Wait(ctx context.Context) error {
	return ctx.Err()
}

type FixedDelay time.Duration

func (d FixedDelay) Wait(ctx context.Context) error {
	return sleep(ctx, time.Duration(d))
}

// JitterDelay waits a random duration in [Min, Max].
type JitterDelay struct {
	Min, Max time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

func NewJitterDelay(lo, hi time.Duration, seed int64) *JitterDelay {
	if hi < lo {
		hi = lo
	}
	return &JitterDelay{Min: lo, Max: hi, rng: rand.New(rand.NewSource(seed))}
}

func (j *JitterDelay) Wait(ctx context.Context) error {
	d := j.Min
	if span := j.Max - j.Min; span > 0 {
		j.mu.Lock()
		d += time.Duration(j.rng.Int63n(int64(span) + 1))
		j.mu.Unlock()
	}
	return sleep(ctx, d)
}

func sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
