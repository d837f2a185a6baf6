package api

import "errors"

var (
	// ErrNoToken is returned before any request is issued when neither token
	// store backend holds a credential. Hitting it means the caller skipped
	// the login flow; it is not a recoverable network condition.
	ErrNoToken = errors.New("no authentication token found")

	// ErrUnavailable marks transport-level failures: connection refused,
	// DNS errors, a reset mid-response. The server never saw the request
	// or never answered it.
	ErrUnavailable = errors.New("server unavailable")
)

// Error is a non-2xx response from the backend. Message carries the
// server-provided error text when the JSON body had one, otherwise the
// operation's generic fallback.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }
