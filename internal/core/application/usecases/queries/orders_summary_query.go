package queries

import (
	"errors"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/order"
	"packflow/internal/pkg/guard"
)

var ErrOrdersSummaryQueryIsNotConstructed = errors.New(
	"OrdersSummaryQuery must be created via NewOrdersSummaryQuery constructor",
)

// OrdersSummaryQuery counts orders per filter key of one board, for the
// counters shown next to each tab.
type OrdersSummaryQuery struct {
	actor *access.Actor
	board access.Section

	guard guard.ConstructorGuard
}

// NewOrdersSummaryQuery rejects sections that are not order boards.
func NewOrdersSummaryQuery(actor *access.Actor, board access.Section) (OrdersSummaryQuery, error) {
	_, boardErr := order.FilterKeys(board)
	if err := errors.Join(actor.Validate(), boardErr); err != nil {
		return OrdersSummaryQuery{}, err
	}
	return OrdersSummaryQuery{actor: actor, board: board, guard: guard.NewConstructorGuard()}, nil
}

func (q OrdersSummaryQuery) Validate() error {
	return q.guard.Validate(ErrOrdersSummaryQueryIsNotConstructed)
}

func (q OrdersSummaryQuery) Actor() *access.Actor  { return q.actor }
func (q OrdersSummaryQuery) Board() access.Section { return q.board }
