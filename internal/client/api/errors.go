package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable reports a transport-level failure: the server could not
	// be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrInvalidCredentials is a 401 from the login endpoint itself.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionExpired is a 401 from any other endpoint. The transport
	// reacts to it centrally; callers rarely need to handle it themselves.
	ErrSessionExpired = errors.New("session expired")
)

// APIError is any other non-2xx response. Message carries the
// server-provided text when present, otherwise a generic fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}
