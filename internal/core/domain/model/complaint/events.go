package complaint

import (
	"time"

	"packflow/internal/core/domain/model/kernel"
)

const (
	RaisedEventName   = "complaint.raised"
	ResolvedEventName = "complaint.resolved"
)

// RaisedEvent is recorded when a complaint is opened.
type RaisedEvent struct {
	ID          kernel.UUID `json:"id"`
	ComplaintID kernel.UUID `json:"complaintId"`
	OrderID     kernel.UUID `json:"orderId"`
	Section     string      `json:"section"`
	CreatedBy   kernel.UUID `json:"createdBy"`
	At          time.Time   `json:"at"`
}

func (e RaisedEvent) EventID() kernel.UUID     { return e.ID }
func (e RaisedEvent) EventName() string        { return RaisedEventName }
func (e RaisedEvent) AggregateID() kernel.UUID { return e.ComplaintID }
func (e RaisedEvent) OccurredAt() time.Time    { return e.At }

// ResolvedEvent is recorded when a complaint is closed.
type ResolvedEvent struct {
	ID          kernel.UUID `json:"id"`
	ComplaintID kernel.UUID `json:"complaintId"`
	OrderID     kernel.UUID `json:"orderId"`
	ResolvedBy  kernel.UUID `json:"resolvedBy"`
	At          time.Time   `json:"at"`
}

func (e ResolvedEvent) EventID() kernel.UUID     { return e.ID }
func (e ResolvedEvent) EventName() string        { return ResolvedEventName }
func (e ResolvedEvent) AggregateID() kernel.UUID { return e.ComplaintID }
func (e ResolvedEvent) OccurredAt() time.Time    { return e.At }
