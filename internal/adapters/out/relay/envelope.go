// Package relay defines the wire envelope shared by the broker publishers.
package relay

import (
	"encoding/json"
	"time"

	"packflow/internal/core/ports"
)

const ContentType = "application/json"

// Envelope is the JSON document published for every outbox message.
type Envelope struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	AggregateID string          `json:"aggregateId"`
	OccurredAt  time.Time       `json:"occurredAt"`
	Payload     json.RawMessage `json:"payload"`
}

// Marshal wraps msg in an Envelope.
func Marshal(msg ports.OutboxMessage) ([]byte, error) {
	payload := json.RawMessage(msg.Payload)
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	return json.Marshal(Envelope{
		ID:          msg.ID.String(),
		Name:        msg.Name,
		AggregateID: msg.AggregateID.String(),
		OccurredAt:  msg.OccurredAt.UTC(),
		Payload:     payload,
	})
}
