package order

import (
	"time"

	"packflow/internal/core/domain/model/kernel"
)

const (
	SubmittedEventName = "order.submitted"
	AdvancedEventName  = "order.advanced"
)

// SubmittedEvent is recorded when a staff member enters a new order.
type SubmittedEvent struct {
	ID           kernel.UUID `json:"eventId"`
	OrderID      kernel.UUID `json:"orderId"`
	CustomerName string      `json:"customerName"`
	ItemCount    int         `json:"itemCount"`
	CreatedBy    kernel.UUID `json:"createdBy"`
	At           time.Time   `json:"at"`
}

func (e SubmittedEvent) EventID() kernel.UUID     { return e.ID }
func (e SubmittedEvent) EventName() string        { return SubmittedEventName }
func (e SubmittedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e SubmittedEvent) OccurredAt() time.Time    { return e.At }

// AdvancedEvent is recorded for every accepted transition. Persisted, it is one
// row of the order's append-only history.
type AdvancedEvent struct {
	ID      kernel.UUID `json:"eventId"`
	OrderID kernel.UUID `json:"orderId"`
	Stage   string      `json:"stage"`
	From    string      `json:"from"`
	To      string      `json:"to"`
	Actor   kernel.UUID `json:"actor"`
	At      time.Time   `json:"at"`
}

func (e AdvancedEvent) EventID() kernel.UUID     { return e.ID }
func (e AdvancedEvent) EventName() string        { return AdvancedEventName }
func (e AdvancedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e AdvancedEvent) OccurredAt() time.Time    { return e.At }
