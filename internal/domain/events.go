package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventAdrOpened           EventType = "AdrOpened"
	EventModeChanged         EventType = "ModeChanged"
	EventRepositoriesAdded   EventType = "RepositoriesAdded"
	EventRepositoryRemoved   EventType = "RepositoryRemoved"
	EventRepositoryUpdated   EventType = "RepositoryUpdated"
	EventAdrCreated          EventType = "AdrCreated"
	EventAdrDeleted          EventType = "AdrDeleted"
	EventStateReloaded       EventType = "StateReloaded"
	EventError               EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// AdrOpenedEvent is emitted when a record becomes the currently edited one
type AdrOpenedEvent struct {
	Adr *Adr
}

func (e AdrOpenedEvent) Type() EventType { return EventAdrOpened }

// ModeChangedEvent is emitted when the UI complexity tier changes
type ModeChangedEvent struct {
	Mode Mode
}

func (e ModeChangedEvent) Type() EventType { return EventModeChanged }

// RepositoriesAddedEvent is emitted after a batch of repositories is added
type RepositoriesAddedEvent struct {
	Repositories []*Repository
}

func (e RepositoriesAddedEvent) Type() EventType { return EventRepositoriesAdded }

// RepositoryRemovedEvent is emitted when a repository is removed from the store
type RepositoryRemovedEvent struct {
	FullName string
}

func (e RepositoryRemovedEvent) Type() EventType { return EventRepositoryRemoved }

// RepositoryUpdatedEvent is emitted when a repository is replaced in the store
type RepositoryUpdatedEvent struct {
	Repository *Repository
}

func (e RepositoryUpdatedEvent) Type() EventType { return EventRepositoryUpdated }

// AdrCreatedEvent is emitted when a new record is created locally
type AdrCreatedEvent struct {
	Repository *Repository
	Adr        *Adr
}

func (e AdrCreatedEvent) Type() EventType { return EventAdrCreated }

// AdrDeletedEvent is emitted when a record is removed from its repository
type AdrDeletedEvent struct {
	Repository *Repository
	Adr        *Adr
}

func (e AdrDeletedEvent) Type() EventType { return EventAdrDeleted }

// StateReloadedEvent is emitted after state is restored from persistence
type StateReloadedEvent struct {
	Repositories int
	Mode         Mode
}

func (e StateReloadedEvent) Type() EventType { return EventStateReloaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
