package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/i474232898/weather-search-history/internal/search"
)

func TestSQLiteInsertAndList(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "historial.db")

	s, err := NewSQLiteStore(ctx, dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer s.Close(ctx)

	older := time.Date(2024, 5, 1, 12, 0, 0, 123, time.UTC)
	newer := older.Add(time.Second)

	first := search.Record{
		ID:            "a1",
		City:          "Paris",
		Country:       "FR",
		Temp:          "15.2",
		Condition:     "Nublado",
		ConditionText: "overcast clouds",
		Icon:          "https://openweathermap.org/img/wn/04d.png",
		Date:          older,
	}
	second := search.Record{ID: "a2", City: "Lima", Country: "PE", Temp: "19", Date: newer}

	for _, rec := range []search.Record{first, second} {
		if err := s.Insert(ctx, rec); err != nil {
			t.Fatalf("Insert(%s) failed: %v", rec.ID, err)
		}
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 records, got %d", len(list))
	}
	if list[0].ID != "a2" {
		t.Errorf("expected newest record first, got %s", list[0].ID)
	}

	got := list[1]
	if !got.Date.Equal(first.Date) {
		t.Errorf("date mismatch: got %v want %v", got.Date, first.Date)
	}
	got.Date = first.Date
	if got != first {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, first)
	}
}

func TestSQLiteRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	s, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "dup.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer s.Close(ctx)

	rec := search.Record{ID: "same", City: "Paris", Country: "FR", Date: time.Now()}
	if err := s.Insert(ctx, rec); err != nil {
		t.Fatalf("first Insert failed: %v", err)
	}
	if err := s.Insert(ctx, rec); err == nil {
		t.Fatal("expected second Insert with the same id to fail")
	}
}
