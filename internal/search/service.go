package search

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Service assigns server-side fields to incoming searches and persists them.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a new Service backed by store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Save stores a new record built from d and returns it as stored.
func (s *Service) Save(ctx context.Context, d Draft) (Record, error) {
	rec := Record{
		ID:            uuid.NewString(),
		City:          d.City,
		Country:       d.Country,
		Temp:          d.Temp,
		Condition:     d.Condition,
		ConditionText: d.ConditionText,
		Icon:          d.Icon,
		Date:          s.now(),
	}

	if err := s.store.Insert(ctx, rec); err != nil {
		return Record{}, wrapPersistence("save search", err)
	}
	return rec, nil
}

// List returns all stored records ordered by Date, most recent first.
// An empty history yields an empty, non-nil slice.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	recs, err := s.store.List(ctx)
	if err != nil {
		return nil, wrapPersistence("list searches", err)
	}
	if recs == nil {
		recs = []Record{}
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Date.After(recs[j].Date) })
	return recs, nil
}

// Ping reports whether the underlying store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return wrapPersistence("ping store", err)
	}
	return nil
}

func wrapPersistence(op string, err error) error {
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
