package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means no response was received at all (timeout,
	// connection refused, DNS failure).
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized maps HTTP 401. The transport has already cleared the
	// session by the time the caller sees it.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound maps HTTP 404 on single-resource operations.
	ErrNotFound = errors.New("not found")
	// ErrServer covers every other non-2xx response.
	ErrServer = errors.New("server error")
)

// StatusError is a normalized non-2xx response: the HTTP status, the server's
// human-readable message (when the payload carried one), and the taxonomy
// sentinel reachable through errors.Is.
type StatusError struct {
	Status  int
	Message string
	Kind    error
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%v (status %d)", e.Kind, e.Status)
}

func (e *StatusError) Unwrap() error { return e.Kind }
