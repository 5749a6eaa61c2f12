package mockdispatch

import (
	"sync"

	"github.com/eventwire/dispatch"
)

// Recorder implements dispatch.Callable for testing, recording every
// invocation in order
type Recorder struct {
	mu     sync.Mutex
	id     string
	events []string
	err    error
	stop   bool
}

// NewRecorder creates a new recording listener with the given identity
func NewRecorder(id string) *Recorder {
	return &Recorder{
		id:     id,
		events: []string{},
	}
}

// ID returns the identity the Recorder was created with
func (r *Recorder) ID() string {
	return r.id
}

// Call records the event and applies the configured behavior
func (r *Recorder) Call(event string, args dispatch.Args) error {
	r.mu.Lock()
	r.events = append(r.events, event)
	stop, err := r.stop, r.err
	r.mu.Unlock()

	if stop {
		args.StopPropagation()
	}
	return err
}

// SetErr makes every subsequent Call return err
func (r *Recorder) SetErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// SetStopPropagation makes every subsequent Call stop propagation
func (r *Recorder) SetStopPropagation(stop bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stop = stop
}

// Events returns the recorded event names in invocation order
func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]string, len(r.events))
	copy(events, r.events)
	return events
}

// Called returns whether the Recorder was invoked at least once
func (r *Recorder) Called() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events) > 0
}

// Reset clears all recorded invocations
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = []string{}
}
