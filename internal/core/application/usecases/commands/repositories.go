// Package commands contains business operations that modify workflow state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"packflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ComplaintRepoFactory provides access to the complaint repository within a transaction.
	ComplaintRepoFactory interface {
		ComplaintRepository() ports.ComplaintRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ComplaintUoW manages transactions for complaint operations. Raising a
	// complaint reads the order it references, so both repositories are exposed.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   if _, err = uow.OrderRepository().Get(ctx, orderID); err != nil { ... }
	//   err = uow.ComplaintRepository().Add(ctx, c)
	//
	//   err = uow.Commit(ctx)
	ComplaintUoW interface {
		TxManager
		OrderRepoFactory
		ComplaintRepoFactory
	}

	// ComplaintUoWFactory creates new complaint unit of work instances.
	ComplaintUoWFactory interface {
		Create() ComplaintUoW
	}

	// OutboxRepoFactory provides access to the outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OutboxUoW manages the transaction that locks, relays and acknowledges
	// a batch of outbox messages.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
