// Package ports defines the contracts between the workflow core and its
// infrastructure: persistence, identity and event delivery.
package ports

import (
	"context"

	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly submitted order with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a transitioned order. The write only applies while the
	// stored status still equals expected; otherwise it fails with a
	// ConflictError and nothing is written. Every AdvancedEvent the aggregate
	// carries is appended to the order history in the same write.
	Update(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get loads an order with its items and stamps, or returns an
	// ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
