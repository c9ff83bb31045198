package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/i474232898/weather-search-history/internal/search"
)

var (
	// ErrNotConnected is returned by every operation of a store whose
	// connection could not be established at startup.
	ErrNotConnected = errors.New("store is not connected")
	// ErrUnsupportedURI is returned by Open for an unknown URI scheme.
	ErrUnsupportedURI = errors.New("unsupported store uri")
	// ErrMissingURI is returned by Open when no URI was configured.
	ErrMissingURI = errors.New("store uri is not configured")
)

// Options tunes the backend selected by Open.
type Options struct {
	// Database is used by the Mongo backend when the URI carries no database.
	Database string
}

// Open connects to the store described by uri. The scheme picks the backend:
//
//	mongodb://, mongodb+srv://  MongoDB collection "historial"
//	sqlite://path, file:path    SQLite database file
//	memory://                   process memory
func Open(ctx context.Context, uri string, opts Options) (search.Store, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, ErrMissingURI
	}

	switch {
	case strings.HasPrefix(uri, "mongodb://"), strings.HasPrefix(uri, "mongodb+srv://"):
		s, err := NewMongoStore(ctx, uri, opts.Database)
		if err != nil {
			return nil, err
		}
		return s, nil
	case strings.HasPrefix(uri, "sqlite://"), strings.HasPrefix(uri, "file:"):
		s, err := NewSQLiteStore(ctx, strings.TrimPrefix(uri, "sqlite://"))
		if err != nil {
			return nil, err
		}
		return s, nil
	case strings.HasPrefix(uri, "memory://"):
		return NewMemoryStore(), nil
	}

	scheme := uri
	if u, err := url.Parse(uri); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedURI, scheme)
}
