package dispatch

import (
	"sort"
	"sync"
)

// entry pairs a registered listener with its priority. One entry holds
// both, so a registry can never hold a priority without its listener or
// the other way around.
type entry struct {
	id       string
	listener Listener
	priority int
}

// registry holds the listeners of a single event name. The entries slice
// preserves insertion order until a sort reorders it; sorted is true iff
// the slice currently reflects descending-priority order.
type registry struct {
	entries []entry
	index   map[string]int // listener ID -> position in entries
	sorted  bool
}

func newRegistry() *registry {
	return &registry{
		index: make(map[string]int),
	}
}

// ensureSorted reorders entries by descending priority. Equal priorities
// keep their relative order, so listeners registered without an explicit
// priority fire in registration order. Repeated dispatches without
// intervening registrations pay the sort cost only once.
func (r *registry) ensureSorted() {
	if r.sorted {
		return
	}
	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].priority > r.entries[j].priority
	})
	for i, e := range r.entries {
		r.index[e.id] = i
	}
	r.sorted = true
}

// Dispatcher routes dispatched events to their registered listeners,
// highest priority first. The zero value is not usable; create one with
// New. All methods are safe for concurrent use.
type Dispatcher struct {
	mu         sync.RWMutex
	registries map[string]*registry
}

// New creates an empty Dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		registries: make(map[string]*registry),
	}
}

// Subscribe registers listener for the given events with the given
// priority (higher fires earlier, 0 is the conventional default).
// Registering an already-registered listener for an event overwrites its
// listener value and priority instead of adding a duplicate. Subscribe
// never fails.
func (d *Dispatcher) Subscribe(listener Listener, priority int, events ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := listener.ID()
	for _, event := range events {
		r := d.registries[event]
		if r == nil {
			r = newRegistry()
			d.registries[event] = r
		}

		if i, ok := r.index[id]; ok {
			r.entries[i].listener = listener
			r.entries[i].priority = priority
		} else {
			r.index[id] = len(r.entries)
			r.entries = append(r.entries, entry{id: id, listener: listener, priority: priority})
		}

		// Invalidate unconditionally; the cost is deferred to the next sort.
		r.sorted = false
	}
}

// Unsubscribe removes listener from the given events. Removing a
// listener that is not registered, or from an event that was never
// registered, is a no-op.
func (d *Dispatcher) Unsubscribe(listener Listener, events ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := listener.ID()
	for _, event := range events {
		r := d.registries[event]
		if r == nil {
			continue
		}
		i, ok := r.index[id]
		if !ok {
			continue
		}

		// Preserve the order of the remaining entries; it is the baseline
		// for the next stable sort.
		r.entries = append(r.entries[:i], r.entries[i+1:]...)
		delete(r.index, id)
		for j := i; j < len(r.entries); j++ {
			r.index[r.entries[j].id] = j
		}
		r.sorted = false
	}
}

// AddSubscriber registers sub for every event it declares, all with the
// same priority. Equivalent to one Subscribe call per declared event.
func (d *Dispatcher) AddSubscriber(sub Subscriber, priority int) {
	d.Subscribe(sub, priority, sub.SubscribedEvents()...)
}

// RemoveSubscriber removes sub from every event it declares.
func (d *Dispatcher) RemoveSubscriber(sub Subscriber) {
	d.Unsubscribe(sub, sub.SubscribedEvents()...)
}

// HasListeners returns whether at least one listener is registered for
// the event. It never triggers a sort.
func (d *Dispatcher) HasListeners(event string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	r := d.registries[event]
	return r != nil && len(r.entries) > 0
}

// ListenerCount returns the number of listeners registered for the
// event. Like HasListeners it never triggers a sort.
func (d *Dispatcher) ListenerCount(event string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	r := d.registries[event]
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Listeners returns the event's listeners as a snapshot in dispatch
// order. Mutating the dispatcher afterward does not change an
// already-returned snapshot.
func (d *Dispatcher) Listeners(event string) []Listener {
	d.mu.Lock()
	defer d.mu.Unlock()

	r := d.registries[event]
	if r == nil {
		return nil
	}
	return r.snapshot()
}

// AllListeners returns a snapshot of every known event's listeners in
// dispatch order. Events whose last listener was removed appear with an
// empty slice.
func (d *Dispatcher) AllListeners() map[string][]Listener {
	d.mu.Lock()
	defer d.mu.Unlock()

	all := make(map[string][]Listener, len(d.registries))
	for event, r := range d.registries {
		all[event] = r.snapshot()
	}
	return all
}

// snapshot sorts the registry and copies out its listeners. Caller must
// hold the write lock.
func (r *registry) snapshot() []Listener {
	r.ensureSorted()
	listeners := make([]Listener, len(r.entries))
	for i, e := range r.entries {
		listeners[i] = e.listener
	}
	return listeners
}

// Clear removes all listeners for all events.
func (d *Dispatcher) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.registries = make(map[string]*registry)
}

// Dispatch invokes the event's listeners in descending-priority order
// with the given args. A nil args dispatches a fresh NewArgs(); the
// caller can keep a reference to inspect state listeners left behind.
// Dispatching an event with no listeners is a no-op.
//
// The first error ends the dispatch: listener errors are returned to the
// caller unchanged, exactly as if the caller had invoked the listener
// directly, and a HandlerProvider missing a handler for the event yields
// a *MissingHandlerError. Listeners that already ran keep their side
// effects. After each invocation the args are checked and a stopped
// propagation skips every remaining listener of this dispatch.
func (d *Dispatcher) Dispatch(event string, args Args) error {
	d.mu.Lock()
	r := d.registries[event]
	if r == nil || len(r.entries) == 0 {
		d.mu.Unlock()
		return nil
	}
	r.ensureSorted()
	// Invoke on a copy so listener code can call back into the dispatcher.
	entries := make([]entry, len(r.entries))
	copy(entries, r.entries)
	d.mu.Unlock()

	if args == nil {
		args = NewArgs()
	}

	for _, e := range entries {
		if err := invoke(e, event, args); err != nil {
			return err
		}
		if args.IsPropagationStopped() {
			break
		}
	}
	return nil
}

// invoke applies the polymorphic dispatch rule for a single listener.
func invoke(e entry, event string, args Args) error {
	switch l := e.listener.(type) {
	case Callable:
		return l.Call(event, args)
	case HandlerProvider:
		h, ok := l.Handlers()[event]
		if !ok {
			return &MissingHandlerError{Event: event, ListenerID: e.id}
		}
		return h(event, args)
	default:
		return &MissingHandlerError{Event: event, ListenerID: e.id}
	}
}
