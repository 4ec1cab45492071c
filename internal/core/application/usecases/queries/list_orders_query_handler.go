package queries

import (
	"context"
	"sort"

	"packflow/internal/core/domain/model/order"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads orders for the board views.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns orders newest first. On the new-orders board NEW orders are
// moved ahead of the rest, keeping creation order within each group.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := query.Filter()
	statuses := make(pq.StringArray, 0)
	for _, s := range filter.Statuses() {
		statuses = append(statuses, s.String())
	}

	orders, err := loadOrders(ctx, h.db, `status = ANY(?::text[])`, statuses)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return priority(filter, orders[i].Status) < priority(filter, orders[j].Status)
	})
	return orders, nil
}

func priority(filter order.Filter, code string) int {
	s, err := order.ParseStatus(code)
	if err != nil {
		return 1
	}
	return filter.Priority(s)
}
