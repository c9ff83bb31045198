package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-search-history/internal/search"
)

var (
	errUnexpectedStatus = errors.New("unexpected status code")
	errCircuitOpen      = errors.New("history service circuit breaker open")
	errNoHTTPClient     = errors.New("http client not configured")
)

// Client talks to the history service over HTTP. Calls go through a circuit
// breaker so a service that keeps failing is not dialed on every lookup.
// Calls are never retried.
type Client struct {
	baseURL string
	http    *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewClient creates a Client for the service at baseURL, e.g. http://localhost:5000.
func NewClient(client *http.Client, baseURL string) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "history-service",
		MaxRequests: 1,
		Interval:    1 * time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    client,
		circuit: cb,
	}
}

// Save posts rec to /api/search and returns the record as stored.
func (c *Client) Save(ctx context.Context, rec search.Record) (search.Record, error) {
	body, err := json.Marshal(rec.Draft())
	if err != nil {
		return search.Record{}, fmt.Errorf("encode search: %w", err)
	}

	var saved search.Record
	err = c.do(ctx, http.MethodPost, "/api/search", body, http.StatusCreated, &saved)
	if err != nil {
		return search.Record{}, err
	}
	return saved, nil
}

// List fetches the full server-side history, newest first.
func (c *Client) List(ctx context.Context) ([]search.Record, error) {
	var recs []search.Record
	if err := c.do(ctx, http.MethodGet, "/api/searches", nil, http.StatusOK, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, wantStatus int, out any) error {
	if c.http == nil {
		return errNoHTTPClient
	}

	_, err := c.circuit.Execute(func() (interface{}, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != wantStatus {
			return nil, statusError(resp)
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return nil, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", errCircuitOpen, err)
	}
	return err
}

func statusError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body)
	if body.Message != "" {
		return fmt.Errorf("%w: %d: %s", errUnexpectedStatus, resp.StatusCode, body.Message)
	}
	return fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
}
