package queries

import (
	"context"

	"packflow/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type OrdersSummaryQueryHandler struct {
	db *gorm.DB
}

func NewOrdersSummaryQueryHandler(db *gorm.DB) OrdersSummaryQueryHandler {
	return OrdersSummaryQueryHandler{db: db}
}

// Handle groups orders by status in the database and folds the groups into
// board keys in memory.
func (h OrdersSummaryQueryHandler) Handle(ctx context.Context, query OrdersSummaryQuery) (SummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return SummaryResponse{}, err
	}

	var rows []struct {
		Status string
		N      int
	}
	err := h.db.WithContext(ctx).
		Raw(`SELECT status, COUNT(*) AS n FROM orders GROUP BY status`).
		Scan(&rows).Error
	if err != nil {
		return SummaryResponse{}, err
	}

	total := 0
	counts := make(map[order.Status]int, len(rows))
	for _, row := range rows {
		total += row.N
		s, parseErr := order.ParseStatus(row.Status)
		if parseErr != nil {
			return SummaryResponse{}, parseErr
		}
		counts[s] = row.N
	}

	perKey, err := order.Summarize(query.Board(), counts)
	if err != nil {
		return SummaryResponse{}, err
	}

	return SummaryResponse{
		Board:  query.Board().String(),
		Total:  total,
		Counts: perKey,
	}, nil
}
