// Package dispatch is an in-process event dispatch registry.
//
// Components register interest in named events and a Dispatcher invokes
// the registered listeners synchronously, highest priority first, when an
// event is dispatched. Listeners of equal priority fire in registration
// order. Any listener can stop propagation, which skips the remaining
// listeners for that dispatch only.
//
// Basic usage:
//
//	d := dispatch.New()
//	d.Subscribe(dispatch.NewFunc(func(event string, args dispatch.Args) error {
//		// react to the event
//		return nil
//	}), 0, "user.created")
//	err := d.Dispatch("user.created", nil)
//
// Listeners come in two shapes. A Callable is invoked directly for every
// event it is registered for; NewFunc adapts a bare function into one. A
// HandlerProvider instead exposes a table of named handlers, one per
// event; dispatching an event the table does not cover fails with a
// *MissingHandlerError. A Subscriber is a HandlerProvider that also
// declares which events it wants, so AddSubscriber can register it for
// all of them in one call.
//
// Dispatch is synchronous: it returns only once every listener has run,
// propagation was stopped, or a listener returned an error. Errors from
// listener code are returned to the Dispatch caller unchanged and abort
// the remaining listeners for that dispatch. The Dispatcher itself is
// safe for concurrent use; listener code that mutates the dispatcher it
// is being invoked from will not be observed by the in-flight dispatch.
package dispatch
