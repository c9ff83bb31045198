package store

import (
	"context"
	"sort"
	"sync"

	"github.com/i474232898/weather-search-history/internal/search"
)

// MemoryStore is a concurrency-safe in-memory implementation of search.Store.
// Records live only as long as the process.
type MemoryStore struct {
	mu      sync.RWMutex
	records []search.Record
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Insert appends rec to the collection.
func (s *MemoryStore) Insert(ctx context.Context, rec search.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	return nil
}

// List returns a copy of all records, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]search.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]search.Record, len(s.records))
	copy(out, s.records)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return ctx.Err() }

func (s *MemoryStore) Close(context.Context) error { return nil }
