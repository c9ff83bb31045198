package store

import (
	"context"
	"fmt"

	"github.com/i474232898/weather-search-history/internal/search"
)

// unavailableStore stands in for a store whose initial connection failed.
// Every call fails with the original connection error.
type unavailableStore struct {
	cause error
}

// Unavailable returns a search.Store that rejects every operation with cause.
// The service keeps running on top of it and fails per request.
func Unavailable(cause error) search.Store {
	if cause == nil {
		cause = ErrNotConnected
	}
	return &unavailableStore{cause: cause}
}

func (s *unavailableStore) err() error {
	return fmt.Errorf("%w: %v", ErrNotConnected, s.cause)
}

func (s *unavailableStore) Insert(context.Context, search.Record) error { return s.err() }

func (s *unavailableStore) List(context.Context) ([]search.Record, error) { return nil, s.err() }

func (s *unavailableStore) Ping(context.Context) error { return s.err() }

func (s *unavailableStore) Close(context.Context) error { return nil }
