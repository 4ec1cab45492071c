package ports

import (
	"context"
	"time"

	"packflow/internal/core/domain/model/kernel"
)

// OutboxMessage is a stored domain event waiting to be relayed.
type OutboxMessage struct {
	ID          kernel.UUID
	Name        string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads and acknowledges stored events.
type OutboxRepository interface {
	// Pending returns up to limit unpublished messages, oldest first.
	Pending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished stamps the given messages as relayed.
	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers one message to the broker. Implementations must be
// safe for concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
	Close() error
}
