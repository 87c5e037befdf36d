// Package event provides an in-process type-keyed publish/subscribe bus
// used for decoupled cross-system notifications (scoring, achievements, HUD).
// Dispatch is synchronous and runs in publish order on the caller's goroutine;
// the simulation is single-threaded so the bus adds no concurrency of its own.
package event

import (
	"reflect"
	"sync"
)

// Event is the marker interface implemented by all event types.
type Event interface {
	event()
}

// Subscription identifies a registered handler so it can be removed later.
type Subscription struct {
	key reflect.Type
	id  uint64
}

type handler struct {
	id uint64
	fn func(Event)
}

// Bus dispatches events to subscribers keyed by the event's concrete type.
// The zero value is not usable; create one with NewBus.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[reflect.Type][]handler
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[reflect.Type][]handler),
	}
}

// Subscribe registers fn to be called for every published event of type T.
// Returns a Subscription that can be passed to Unsubscribe.
func Subscribe[T Event](b *Bus, fn func(T)) Subscription {
	key := reflect.TypeOf((*T)(nil)).Elem()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	h := handler{
		id: b.nextID,
		fn: func(e Event) {
			if t, ok := e.(T); ok {
				fn(t)
			}
		},
	}
	b.handlers[key] = append(b.handlers[key], h)

	return Subscription{key: key, id: h.id}
}

// Unsubscribe removes a previously registered handler.
// Unsubscribing an unknown or already-removed subscription is a no-op,
// and is safe even from inside a handler during dispatch.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	hs := b.handlers[sub.key]
	for i, h := range hs {
		if h.id == sub.id {
			b.handlers[sub.key] = append(hs[:i:i], hs[i+1:]...)
			return
		}
	}
}

// Publish delivers e to all handlers subscribed to its concrete type.
// Handlers registered first are called first.
func (b *Bus) Publish(e Event) {
	key := reflect.TypeOf(e)

	b.mu.RLock()
	// Copy so a handler may unsubscribe (or subscribe) during dispatch.
	hs := make([]handler, len(b.handlers[key]))
	copy(hs, b.handlers[key])
	b.mu.RUnlock()

	for _, h := range hs {
		h.fn(e)
	}
}

// SubscriberCount returns the number of handlers registered for the type of e.
// Intended for tests and diagnostics.
func (b *Bus) SubscriberCount(e Event) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[reflect.TypeOf(e)])
}
