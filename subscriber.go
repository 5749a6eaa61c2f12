package dispatch

//go:generate mockgen -destination=mock/mock_subscriber.go -package=mockdispatch -source=subscriber.go

// Subscriber declares a batch of event interests at once. AddSubscriber
// registers the subscriber itself, as a HandlerProvider listener, for
// every event it declares, so the handler table is expected to cover
// each declared event.
type Subscriber interface {
	HandlerProvider

	// SubscribedEvents returns the event names this subscriber wants, in
	// registration order.
	SubscribedEvents() []string
}

// SubscriberFuncs builds a Subscriber from individual handlers without
// declaring a type:
//
//	sub := dispatch.NewSubscriberFuncs().
//		On("user.created", sendWelcome).
//		On("user.deleted", cleanUp)
//	d.AddSubscriber(sub, 0)
type SubscriberFuncs struct {
	id     string
	events []string
	table  map[string]Handler
}

// NewSubscriberFuncs creates an empty SubscriberFuncs with a generated
// identity.
func NewSubscriberFuncs() *SubscriberFuncs {
	return &SubscriberFuncs{
		id:    idGenerator.New(),
		table: make(map[string]Handler),
	}
}

// On adds a handler for an event (builder pattern). Adding a second
// handler for the same event replaces the first.
func (s *SubscriberFuncs) On(event string, h Handler) *SubscriberFuncs {
	if _, exists := s.table[event]; !exists {
		s.events = append(s.events, event)
	}
	s.table[event] = h
	return s
}

// ID returns the identity assigned when the SubscriberFuncs was created.
func (s *SubscriberFuncs) ID() string {
	return s.id
}

// Handlers returns the handler table.
func (s *SubscriberFuncs) Handlers() map[string]Handler {
	return s.table
}

// SubscribedEvents returns the declared events in the order they were
// added.
func (s *SubscriberFuncs) SubscribedEvents() []string {
	events := make([]string, len(s.events))
	copy(events, s.events)
	return events
}
