package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used when no Redis is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	data    map[string]entry
	maxSize int
	now     func() time.Time
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

func NewMemoryStore(maxSize int) *MemoryStore {
	if maxSize <= 0 {
		maxSize = 1000
	}
	return &MemoryStore{
		data:    make(map[string]entry),
		maxSize: maxSize,
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || s.now().After(e.expiresAt) {
		return nil, ErrCacheMiss
	}
	return e.value, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[key]; !exists && len(s.data) >= s.maxSize {
		s.evictLocked()
	}
	s.data[key] = entry{value: value, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) DeleteByPrefix(ctx context.Context, prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.data {
		if strings.HasPrefix(key, prefix) {
			delete(s.data, key)
		}
	}
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// evictLocked drops expired entries, or the one closest to expiry if none are.
func (s *MemoryStore) evictLocked() {
	now := s.now()
	var oldestKey string
	var oldest time.Time
	for key, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, key)
			continue
		}
		if oldestKey == "" || e.expiresAt.Before(oldest) {
			oldestKey, oldest = key, e.expiresAt
		}
	}
	if len(s.data) >= s.maxSize && oldestKey != "" {
		delete(s.data, oldestKey)
	}
}
