package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/i474232898/weather-search-history/internal/search"
)

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, "memory://", Options{})
	if err != nil {
		t.Fatalf("Open(memory://) failed: %v", err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("expected *MemoryStore, got %T", s)
	}

	s, err = Open(ctx, "sqlite://"+filepath.Join(t.TempDir(), "h.db"), Options{})
	if err != nil {
		t.Fatalf("Open(sqlite://) failed: %v", err)
	}
	defer s.Close(ctx)
	if _, ok := s.(*SQLiteStore); !ok {
		t.Errorf("expected *SQLiteStore, got %T", s)
	}
}

func TestOpenErrors(t *testing.T) {
	ctx := context.Background()

	if _, err := Open(ctx, "  ", Options{}); !errors.Is(err, ErrMissingURI) {
		t.Errorf("expected ErrMissingURI, got %v", err)
	}
	if _, err := Open(ctx, "redis://localhost:6379", Options{}); !errors.Is(err, ErrUnsupportedURI) {
		t.Errorf("expected ErrUnsupportedURI, got %v", err)
	}
}

func TestUnavailableFailsEveryCall(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("connection refused")
	s := Unavailable(cause)

	if err := s.Insert(ctx, search.Record{City: "Paris"}); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Insert: expected ErrNotConnected, got %v", err)
	}
	if _, err := s.List(ctx); !errors.Is(err, ErrNotConnected) {
		t.Errorf("List: expected ErrNotConnected, got %v", err)
	}
	if err := s.Ping(ctx); err == nil {
		t.Error("Ping: expected error")
	}
	if err := s.Close(ctx); err != nil {
		t.Errorf("Close: unexpected error %v", err)
	}
}
