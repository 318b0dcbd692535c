package event

import (
	"context"
	"errors"
	"sync"

	"github.com/dshills/richtext/logging"
)

// Sentinel errors for the event bus.
var (
	// ErrInvalidEvent is returned when a published value carries no topic.
	ErrInvalidEvent = errors.New("invalid event")

	// ErrInvalidTopic is returned when a topic is empty or malformed.
	ErrInvalidTopic = errors.New("invalid topic")

	// ErrNilHandler is returned when a nil handler is provided.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrSubscriptionNotFound is returned when unsubscribing an unknown
	// subscription.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// TopicProvider is implemented by every publishable event.
type TopicProvider interface {
	EventTopic() Topic
}

// Handler processes a published event. The event parameter is type-erased;
// handlers type-assert on the payload types they care about.
type Handler interface {
	Handle(ctx context.Context, event any) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, event any) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, event any) error {
	return f(ctx, event)
}

// Subscription identifies a registered handler.
type Subscription struct {
	id      uint64
	pattern Topic
}

// ID returns the subscription's identifier.
func (s Subscription) ID() uint64 { return s.id }

// Pattern returns the topic pattern the subscription was registered under.
func (s Subscription) Pattern() Topic { return s.pattern }

// Stats holds event bus counters.
type Stats struct {
	// EventsPublished is the total number of events published.
	EventsPublished uint64

	// HandlersExecuted is the total number of handler executions.
	HandlersExecuted uint64

	// HandlerErrors is the number of handlers that returned errors.
	HandlerErrors uint64

	// ActiveSubscribers is the current number of subscriptions.
	ActiveSubscribers int
}

// Bus delivers events synchronously in the publisher's goroutine, in
// subscription order. Mutation of the editing core is single-threaded, so
// delivery needs no queueing; the registry itself is safe for concurrent
// subscribe and unsubscribe.
type Bus interface {
	// Publish delivers the event to every matching subscription. Handler
	// errors are joined and returned after all handlers have run.
	Publish(ctx context.Context, event TopicProvider) error

	// Subscribe registers a handler for a topic pattern. A pattern matches
	// itself and every descendant topic; the empty pattern matches all.
	Subscribe(pattern Topic, h Handler) (Subscription, error)

	// SubscribeFunc registers a handler function for a topic pattern.
	SubscribeFunc(pattern Topic, fn HandlerFunc) (Subscription, error)

	// Unsubscribe removes a subscription.
	Unsubscribe(sub Subscription) error

	// Stats returns bus counters.
	Stats() Stats
}

// Option configures a bus.
type Option func(*bus)

// WithLogger sets the logger handler errors are reported to.
func WithLogger(logger *logging.Logger) Option {
	return func(b *bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

type entry struct {
	sub     Subscription
	handler Handler
}

type bus struct {
	logger *logging.Logger

	mu      sync.RWMutex
	entries []entry
	nextID  uint64

	published        uint64
	handlersExecuted uint64
	handlerErrors    uint64
}

// NewBus creates a synchronous event bus.
func NewBus(opts ...Option) Bus {
	b := &bus{logger: logging.NullLogger}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish delivers the event to matching subscriptions in order.
func (b *bus) Publish(ctx context.Context, event TopicProvider) error {
	if event == nil {
		return ErrInvalidEvent
	}
	t := event.EventTopic()
	if !t.IsValid() {
		return ErrInvalidTopic
	}

	b.mu.Lock()
	b.published++
	matched := make([]entry, 0, len(b.entries))
	for _, e := range b.entries {
		if e.sub.pattern.Matches(t) {
			matched = append(matched, e)
		}
	}
	b.mu.Unlock()

	var errs []error
	for _, e := range matched {
		err := e.handler.Handle(ctx, event)

		b.mu.Lock()
		b.handlersExecuted++
		if err != nil {
			b.handlerErrors++
		}
		b.mu.Unlock()

		if err != nil {
			b.logger.Error("handler failed: topic=%s sub=%d: %v", t, e.sub.id, err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Subscribe registers a handler for a topic pattern.
func (b *bus) Subscribe(pattern Topic, h Handler) (Subscription, error) {
	if h == nil {
		return Subscription{}, ErrNilHandler
	}
	if pattern != "" && !pattern.IsValid() {
		return Subscription{}, ErrInvalidTopic
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := Subscription{id: b.nextID, pattern: pattern}
	b.entries = append(b.entries, entry{sub: sub, handler: h})
	return sub, nil
}

// SubscribeFunc registers a handler function for a topic pattern.
func (b *bus) SubscribeFunc(pattern Topic, fn HandlerFunc) (Subscription, error) {
	if fn == nil {
		return Subscription{}, ErrNilHandler
	}
	return b.Subscribe(pattern, fn)
}

// Unsubscribe removes a subscription.
func (b *bus) Unsubscribe(sub Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, e := range b.entries {
		if e.sub.id == sub.id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Stats returns bus counters.
func (b *bus) Stats() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return Stats{
		EventsPublished:   b.published,
		HandlersExecuted:  b.handlersExecuted,
		HandlerErrors:     b.handlerErrors,
		ActiveSubscribers: len(b.entries),
	}
}
