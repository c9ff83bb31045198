package history

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/i474232898/weather-search-history/internal/search"
)

// Saver persists one record remotely.
type Saver interface {
	Save(ctx context.Context, rec search.Record) (search.Record, error)
}

// Forwarder sends records to the history service in the background.
// The caller never sees the outcome; it is only logged.
type Forwarder struct {
	saver   Saver
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewForwarder creates a Forwarder; each save gets its own timeout.
func NewForwarder(saver Saver, timeout time.Duration) *Forwarder {
	return &Forwarder{saver: saver, timeout: timeout}
}

// Record starts a detached save of rec and returns immediately.
func (f *Forwarder) Record(rec search.Record) {
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
		defer cancel()

		saved, err := f.saver.Save(ctx, rec)
		if err != nil {
			log.Printf("ERROR: failed to save search for %s: %v", rec.City, err)
			return
		}
		log.Printf("INFO: search saved: id=%s city=%s date=%s", saved.ID, saved.City, saved.Date.Format(time.RFC3339))
	}()
}

// Wait blocks until every save started so far has finished. Only used on shutdown.
func (f *Forwarder) Wait() {
	f.wg.Wait()
}
