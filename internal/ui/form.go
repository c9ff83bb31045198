package ui

import (
	"context"
	"errors"
	"sync"

	"github.com/i474232898/weather-search-history/internal/search"
	"github.com/i474232898/weather-search-history/internal/weather"
)

// Looker resolves a city name into a record.
type Looker interface {
	Lookup(ctx context.Context, cityName string) (search.Record, error)
}

// Recorder persists a successful lookup without blocking the caller.
type Recorder interface {
	Record(rec search.Record)
}

// View is a snapshot of the form state.
type View struct {
	Loading bool
	Err     string // inline field error, empty when none
	Result  *search.Record
	History []search.Record
}

// Form holds the client state: loading flag, inline error, the displayed
// result and the per-session history. Submissions are not serialized; when
// two are in flight the last one to finish wins.
type Form struct {
	looker   Looker
	recorder Recorder

	mu      sync.Mutex
	loading bool
	err     string
	result  *search.Record
	history []search.Record
}

// NewForm creates a Form. recorder may be nil to skip persistence.
func NewForm(looker Looker, recorder Recorder) *Form {
	return &Form{looker: looker, recorder: recorder}
}

// Submit runs one lookup for city and updates the form state. The returned
// error is the one shown inline; persistence is fired afterwards and its
// outcome never reaches the caller.
func (f *Form) Submit(ctx context.Context, city string) error {
	f.mu.Lock()
	f.loading = true
	f.err = ""
	f.mu.Unlock()

	rec, err := f.looker.Lookup(ctx, city)

	f.mu.Lock()
	f.loading = false
	if err != nil {
		f.err = userMessage(err)
		f.mu.Unlock()
		return err
	}
	f.result = &rec
	f.history = append(f.history, rec)
	f.err = ""
	f.mu.Unlock()

	if f.recorder != nil {
		f.recorder.Record(rec)
	}
	return nil
}

// View returns a copy of the current state.
func (f *Form) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := View{
		Loading: f.loading,
		Err:     f.err,
		History: append([]search.Record(nil), f.history...),
	}
	if f.result != nil {
		r := *f.result
		v.Result = &r
	}
	return v
}

func userMessage(err error) string {
	var ve *search.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var pe *search.ProviderError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return weather.MsgProviderFallback
}
