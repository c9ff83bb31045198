package search

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeStore keeps records in insertion order so the service's own ordering
// is what the tests observe.
type fakeStore struct {
	records []Record
	err     error
}

func (f *fakeStore) Insert(_ context.Context, rec Record) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeStore) List(context.Context) ([]Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]Record(nil), f.records...), nil
}

func (f *fakeStore) Ping(context.Context) error  { return f.err }
func (f *fakeStore) Close(context.Context) error { return nil }

func TestSaveAssignsIDAndDate(t *testing.T) {
	st := &fakeStore{}
	svc := NewService(st)

	before := time.Now().UTC()
	rec, err := svc.Save(context.Background(), Draft{City: "Paris", Country: "FR", Temp: "15.2"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if rec.ID == "" {
		t.Error("expected an id to be assigned")
	}
	if rec.Date.Before(before) {
		t.Errorf("date %v is before send time %v", rec.Date, before)
	}
	if len(st.records) != 1 || st.records[0].ID != rec.ID {
		t.Fatalf("record was not persisted: %+v", st.records)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st := &fakeStore{records: []Record{
		{ID: "a", Date: base},
		{ID: "c", Date: base.Add(2 * time.Hour)},
		{ID: "b", Date: base.Add(time.Hour)},
	}}

	recs, err := NewService(st).List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Date.After(recs[i-1].Date) {
			t.Fatalf("records out of order at %d: %v after %v", i, recs[i].Date, recs[i-1].Date)
		}
	}
	if recs[0].ID != "c" {
		t.Errorf("expected newest record first, got %s", recs[0].ID)
	}
}

func TestListEmptyIsNonNil(t *testing.T) {
	recs, err := NewService(&fakeStore{}).List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if recs == nil {
		t.Fatal("expected empty non-nil slice")
	}
}

func TestStoreFailuresArePersistenceErrors(t *testing.T) {
	svc := NewService(&fakeStore{err: errors.New("connection refused")})
	ctx := context.Background()

	var pe *PersistenceError
	if _, err := svc.Save(ctx, Draft{City: "Paris", Country: "FR"}); !errors.As(err, &pe) {
		t.Errorf("Save: expected PersistenceError, got %T %v", err, err)
	}
	if _, err := svc.List(ctx); !errors.As(err, &pe) {
		t.Errorf("List: expected PersistenceError, got %T %v", err, err)
	}
	if err := svc.Ping(ctx); !errors.As(err, &pe) {
		t.Errorf("Ping: expected PersistenceError, got %T %v", err, err)
	}
}
