package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate during a command. Aggregates
// collect events; the unit of work stores them in the outbox on commit.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}
