package queries

import (
	"context"
	"time"

	"packflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewOrderHistoryQueryHandler(db *gorm.DB) OrderHistoryQueryHandler {
	return OrderHistoryQueryHandler{db: db}
}

// Handle returns the history, empty for an order that never moved, or an
// ObjectNotFoundError when the order does not exist.
func (h OrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query OrderHistoryQuery,
) ([]HistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	db := h.db.WithContext(ctx)

	var exists bool
	err := db.Raw(`SELECT EXISTS (SELECT 1 FROM orders WHERE id = ?)`, query.OrderID().Bytes()).
		Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var rows []struct {
		Stage      string
		FromStatus string
		ToStatus   string
		ActorID    uuid.UUID
		At         time.Time
	}
	err = db.Raw(`
		SELECT stage, from_status, to_status, actor_id, at
		FROM order_history
		WHERE order_id = ?
		ORDER BY at, id`, query.OrderID().Bytes()).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	identities := make(identitySet)
	for i := range rows {
		identities.add(&rows[i].ActorID)
	}
	if err = identities.resolve(ctx, h.db); err != nil {
		return nil, err
	}

	history := make([]HistoryEntryResponse, 0, len(rows))
	for _, row := range rows {
		history = append(history, HistoryEntryResponse{
			Stage: row.Stage,
			From:  row.FromStatus,
			To:    row.ToStatus,
			By:    identities.get(row.ActorID),
			At:    row.At,
		})
	}
	return history, nil
}
