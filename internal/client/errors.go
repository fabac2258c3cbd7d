package client

import (
	"errors"
	"fmt"
)

// Sentinel errors for the client's failure taxonomy. Callers match them
// with errors.Is; the underlying cause is carried in the wrapped message.
var (
	ErrInvalidURL           = errors.New("invalid URL")
	ErrRequestFailed        = errors.New("request failed")
	ErrInvalidResponse      = errors.New("invalid response from server")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNetwork              = errors.New("network error")
)

// APIError is a non-2xx response from the backend. It unwraps to
// ErrRequestFailed so callers can match the whole class.
type APIError struct {
	StatusCode int
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed: %s returned status %d", e.Path, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return ErrRequestFailed
}
