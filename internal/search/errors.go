package search

import "fmt"

// ValidationError reports input rejected before any I/O happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ProviderError reports a failed weather provider call: a non-2xx status,
// a transport failure or an undecodable body. Message is safe to show to
// the end user.
type ProviderError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return "provider error: " + e.Message
}

func (e *ProviderError) Unwrap() error { return e.Err }

// PersistenceError reports a store failure on write, read or connect.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
