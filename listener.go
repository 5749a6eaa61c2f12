package dispatch

import (
	"github.com/eventwire/dispatch/internal/uuid"
)

// Handler is invoked with the name of the dispatched event and its
// payload. The event name lets one handler serve several events.
type Handler func(event string, args Args) error

// Listener is the unit of registration. Its ID is a stable identity
// token: registering the same ID twice for one event keeps a single
// entry, and removal matches by ID. Every listener must additionally
// satisfy one of the two invocation shapes, Callable or HandlerProvider.
type Listener interface {
	// ID returns a stable identity for registration bookkeeping.
	ID() string
}

// Callable listeners are invoked directly for every event they are
// registered for.
type Callable interface {
	Listener
	Call(event string, args Args) error
}

// HandlerProvider listeners expose one handler per event name. A
// dispatch for an event missing from the table fails with
// *MissingHandlerError.
type HandlerProvider interface {
	Listener
	Handlers() map[string]Handler
}

var idGenerator uuid.Generator = uuid.NewGoogleUUIDGenerator()

// Func adapts a bare function into a Callable listener. Go functions are
// not comparable, so each Func is assigned a generated identity when it
// is created; keep the *Func around to unsubscribe it later.
type Func struct {
	id string
	fn Handler
}

// NewFunc wraps fn with a generated identity.
func NewFunc(fn Handler) *Func {
	return NewFuncWithID(idGenerator.New(), fn)
}

// NewFuncWithID wraps fn with an explicit identity, for callers that
// manage their own identity space or need deterministic IDs in tests.
func NewFuncWithID(id string, fn Handler) *Func {
	return &Func{
		id: id,
		fn: fn,
	}
}

// ID returns the identity assigned when the Func was created.
func (f *Func) ID() string {
	return f.id
}

// Call invokes the wrapped function.
func (f *Func) Call(event string, args Args) error {
	return f.fn(event, args)
}
