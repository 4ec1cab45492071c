// Package outboxrepo stores domain events next to the aggregate writes that
// produced them, and serves them to the relay job.
package outboxrepo

import (
	"encoding/json"
	"time"

	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MessageDTO is one outbox row. PublishedAt stays NULL until relayed.
type MessageDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:varchar(64);not null"`
	AggregateID uuid.UUID      `gorm:"type:uuid;not null"`
	Payload     datatypes.JSON `gorm:"not null"`
	OccurredAt  time.Time      `gorm:"not null;index"`
	PublishedAt *time.Time     `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox"
}

// FromEvent serializes a domain event into an outbox row.
func FromEvent(e kernel.DomainEvent) (MessageDTO, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return MessageDTO{}, err
	}
	return MessageDTO{
		ID:          e.EventID().Bytes(),
		Name:        e.EventName(),
		AggregateID: e.AggregateID().Bytes(),
		Payload:     datatypes.JSON(payload),
		OccurredAt:  e.OccurredAt(),
	}, nil
}

func toMessage(dto MessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	return ports.OutboxMessage{
		ID:          id,
		Name:        dto.Name,
		AggregateID: aggregateID,
		Payload:     []byte(dto.Payload),
		OccurredAt:  dto.OccurredAt.UTC(),
	}, nil
}
