// Package client holds the application-side state machines: a session
// guard, a generic record form controller, a record list view and a
// dashboard aggregator, all talking to the backend through small store
// interfaces. Every failure becomes an inline message, never a panic.
package client

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated means no session/user was available at call time.
var ErrUnauthenticated = errors.New("not authenticated")

// RemoteError is a rejection from the data service, carrying its message.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

// NetworkError means the request could not complete at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("request failed: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// errMessage converts any operation failure into the string a view shows.
// Remote messages pass through verbatim.
func errMessage(err error) string {
	if errors.Is(err, ErrUnauthenticated) {
		return "Not authenticated"
	}
	return err.Error()
}
