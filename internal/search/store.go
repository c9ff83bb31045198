package search

import "context"

// Store is the append-only collection of records. There is intentionally no
// update or delete method.
type Store interface {
	Insert(ctx context.Context, rec Record) error
	// List returns every record, most recent Date first.
	List(ctx context.Context) ([]Record, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
