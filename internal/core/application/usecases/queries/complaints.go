package queries

import (
	"context"
	"time"

	"packflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type complaintRow struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	CustomerName string
	OrderStatus  string
	Section      string
	Description  string
	Status       string
	CreatedBy    uuid.UUID
	ResolvedBy   *uuid.UUID
	ResolvedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// loadComplaints reads complaints matching where (over alias c), newest
// first, joined with their order and with identities resolved.
func loadComplaints(ctx context.Context, db *gorm.DB, where string, args ...any) ([]ComplaintResponse, error) {
	var rows []complaintRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			c.id, c.order_id, o.customer_name, o.status AS order_status,
			c.section, c.description, c.status, c.created_by,
			c.resolved_by, c.resolved_at, c.created_at, c.updated_at
		FROM complaints c
		JOIN orders o ON o.id = c.order_id
		WHERE `+where+`
		ORDER BY c.created_at DESC, c.id`, args...).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	identities := make(identitySet)
	for i := range rows {
		identities.add(&rows[i].CreatedBy)
		identities.add(rows[i].ResolvedBy)
	}
	if err = identities.resolve(ctx, db); err != nil {
		return nil, err
	}

	complaints := make([]ComplaintResponse, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderID, idErr := kernel.UUIDFromBytes(row.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := ComplaintResponse{
			ID: id,
			Order: ComplaintOrderResponse{
				ID:           orderID,
				CustomerName: row.CustomerName,
				Status:       row.OrderStatus,
			},
			Section:     row.Section,
			Description: row.Description,
			Status:      row.Status,
			CreatedBy:   identities.get(row.CreatedBy),
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		}
		if stamp, ok := identities.stamp(row.ResolvedBy, row.ResolvedAt); ok {
			resp.Resolved = &stamp
		}
		complaints = append(complaints, resp)
	}
	return complaints, nil
}
