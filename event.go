package dispatch

//go:generate mockgen -destination=mock/mock_args.go -package=mockdispatch -source=event.go

// Args carries the mutable payload for a single dispatch. Listeners share
// the same Args value, so state set by an earlier listener is visible to
// later ones and to the caller once Dispatch returns.
type Args interface {
	// StopPropagation stops the current dispatch after the calling
	// listener returns. Listeners remain registered for future dispatches.
	StopPropagation()

	// IsPropagationStopped reports whether propagation has been stopped.
	IsPropagationStopped() bool
}

// EventArgs is the default Args implementation with a flexible context
// bag for passing data between listeners.
type EventArgs struct {
	stopped bool
	values  map[string]any
}

// NewArgs creates an EventArgs with propagation not stopped.
func NewArgs() *EventArgs {
	return &EventArgs{
		values: make(map[string]any),
	}
}

// StopPropagation stops the current dispatch after this listener returns.
func (a *EventArgs) StopPropagation() {
	a.stopped = true
}

// IsPropagationStopped returns whether propagation has been stopped.
func (a *EventArgs) IsPropagationStopped() bool {
	return a.stopped
}

// WithValue adds context data to the args
func (a *EventArgs) WithValue(key string, value any) *EventArgs {
	if a.values == nil {
		a.values = make(map[string]any)
	}
	a.values[key] = value
	return a
}

// Value retrieves a value from the context bag
func (a *EventArgs) Value(key string) (any, bool) {
	val, exists := a.values[key]
	return val, exists
}

// IntValue retrieves an int value from the context bag
func (a *EventArgs) IntValue(key string) (int, bool) {
	val, exists := a.values[key]
	if !exists {
		return 0, false
	}
	intVal, ok := val.(int)
	return intVal, ok
}

// StringValue retrieves a string value from the context bag
func (a *EventArgs) StringValue(key string) (string, bool) {
	val, exists := a.values[key]
	if !exists {
		return "", false
	}
	strVal, ok := val.(string)
	return strVal, ok
}

// BoolValue retrieves a bool value from the context bag
func (a *EventArgs) BoolValue(key string) (value, exists bool) {
	val, exists := a.values[key]
	if !exists {
		return false, false
	}
	boolVal, ok := val.(bool)
	return boolVal, ok
}
