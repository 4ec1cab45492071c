package queries

import (
	"errors"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/pkg/guard"
)

var ErrOrderHistoryQueryIsNotConstructed = errors.New(
	"OrderHistoryQuery must be created via NewOrderHistoryQuery constructor",
)

// OrderHistoryQuery reads every accepted transition of one order, oldest first.
// Unlike the audit stamps on the order, history keeps every actor.
type OrderHistoryQuery struct {
	actor   *access.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewOrderHistoryQuery(actor *access.Actor, orderID kernel.UUID) (OrderHistoryQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return OrderHistoryQuery{}, err
	}
	return OrderHistoryQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q OrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrOrderHistoryQueryIsNotConstructed)
}

func (q OrderHistoryQuery) Actor() *access.Actor { return q.actor }
func (q OrderHistoryQuery) OrderID() kernel.UUID { return q.orderID }
