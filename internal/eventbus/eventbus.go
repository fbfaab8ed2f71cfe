package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"adrgrip/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventAdrOpened         = domain.EventAdrOpened
	EventModeChanged       = domain.EventModeChanged
	EventRepositoriesAdded = domain.EventRepositoriesAdded
	EventRepositoryRemoved = domain.EventRepositoryRemoved
	EventRepositoryUpdated = domain.EventRepositoryUpdated
	EventAdrCreated        = domain.EventAdrCreated
	EventAdrDeleted        = domain.EventAdrDeleted
	EventStateReloaded     = domain.EventStateReloaded
	EventError             = domain.EventError
)

// Re-export domain event types
type AdrOpenedEvent = domain.AdrOpenedEvent
type ModeChangedEvent = domain.ModeChangedEvent
type RepositoriesAddedEvent = domain.RepositoriesAddedEvent
type RepositoryRemovedEvent = domain.RepositoryRemovedEvent
type RepositoryUpdatedEvent = domain.RepositoryUpdatedEvent
type AdrCreatedEvent = domain.AdrCreatedEvent
type AdrDeletedEvent = domain.AdrDeletedEvent
type StateReloadedEvent = domain.StateReloadedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus. Delivery is synchronous:
// handlers run inside the Publish call, in subscription order. Listeners see
// state exactly as it was at the moment of the mutation that published.
type bus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[EventType][]subscription
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to all subscribers of its type before returning
func (b *bus) Publish(event DomainEvent) {
	b.mu.Lock()
	subs := b.handlers[event.Type()]
	// Copy so an unsubscribe from inside a handler cannot shift the slice
	subsCopy := make([]subscription, len(subs))
	copy(subsCopy, subs)
	b.mu.Unlock()

	for _, sub := range subsCopy {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
				}
			}()
			sub.handler(event)
		}()
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}
