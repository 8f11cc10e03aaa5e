package faqstore

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/faq-chatbot/internal/domain/faq"
)

// MemoryStore is an in-memory implementation of the FAQ store for tests/dev
// and for deployments without a Valkey instance.
type MemoryStore struct {
	mu        sync.RWMutex
	trending  map[string]int64
	displays  map[string]string
	fallbacks int64
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		trending: make(map[string]int64),
		displays: make(map[string]string),
	}
}

// IncrementQuery bumps the counter for a canonical query and records a display string.
func (s *MemoryStore) IncrementQuery(_ context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trending[canonical]++
	if _, exists := s.displays[canonical]; !exists {
		s.displays[canonical] = display
	}
	return nil
}

// IncrementFallback counts queries that resolved to the fallback answer.
func (s *MemoryStore) IncrementFallback(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallbacks++
	return nil
}

// Fallbacks reports the running fallback count.
func (s *MemoryStore) Fallbacks() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallbacks
}

// TopQueries returns the most frequent canonical questions.
func (s *MemoryStore) TopQueries(_ context.Context, limit int) ([]faq.TrendingQuery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.trending)
	}
	items := make([]faq.TrendingQuery, 0, len(s.trending))
	for canonical, count := range s.trending {
		display := s.displays[canonical]
		if display == "" {
			display = canonical
		}
		items = append(items, faq.TrendingQuery{Query: display, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Query < items[j].Query
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ faq.Store = (*MemoryStore)(nil)
