package store

import (
	"context"
	"testing"
	"time"

	"github.com/i474232898/weather-search-history/internal/search"
)

func TestMemoryStoreListNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, city := range []string{"Paris", "Lima", "Oslo"} {
		rec := search.Record{ID: city, City: city, Country: "XX", Date: base.Add(time.Duration(i) * time.Minute)}
		if err := s.Insert(ctx, rec); err != nil {
			t.Fatalf("Insert(%s) failed: %v", city, err)
		}
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 records, got %d", len(list))
	}
	if list[0].City != "Oslo" || list[2].City != "Paris" {
		t.Errorf("unexpected order: %s, %s, %s", list[0].City, list[1].City, list[2].City)
	}
}

func TestMemoryStoreListIsACopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	_ = s.Insert(ctx, search.Record{ID: "1", City: "Paris", Date: time.Now()})

	list, _ := s.List(ctx)
	list[0].City = "changed"

	again, _ := s.List(ctx)
	if again[0].City != "Paris" {
		t.Fatalf("stored record was mutated through List result: %q", again[0].City)
	}
}

func TestMemoryStoreEmpty(t *testing.T) {
	list, err := NewMemoryStore().List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", list)
	}
}
