package queries

import (
	"errors"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/order"
	"packflow/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists every order, optionally narrowed to one board view.
// The result does not depend on the actor's permissions.
//
// Example:
//
//	filter, err := order.NewFilter(access.SectionB, "pending")
//	query, err := NewListOrdersQuery(actor, filter)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	actor  *access.Actor
	filter order.Filter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts the zero Filter for an unfiltered listing.
func NewListOrdersQuery(actor *access.Actor, filter order.Filter) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{actor: actor, filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() *access.Actor { return q.actor }
func (q ListOrdersQuery) Filter() order.Filter { return q.filter }
