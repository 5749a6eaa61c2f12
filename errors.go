package dispatch

import "fmt"

// BaseError is a sentinel error usable with errors.Is.
type BaseError string

func (e BaseError) Error() string {
	return string(e)
}

// ErrMissingHandler is the sentinel wrapped by every MissingHandlerError.
const ErrMissingHandler BaseError = "missing handler"

// MissingHandlerError reports a HandlerProvider listener whose handler
// table does not cover an event it was registered for. It aborts the
// remaining listeners of the failing dispatch and is returned to the
// Dispatch caller.
type MissingHandlerError struct {
	Event      string
	ListenerID string
}

func (e *MissingHandlerError) Error() string {
	return fmt.Sprintf("listener %s has no handler for event %q", e.ListenerID, e.Event)
}

func (e *MissingHandlerError) Unwrap() error {
	return ErrMissingHandler
}
