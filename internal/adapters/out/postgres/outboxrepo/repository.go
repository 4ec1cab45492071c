package outboxrepo

import (
	"context"
	"time"

	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Save stores events inside the caller's transaction.
func (r *GormOutboxRepository) Save(ctx context.Context, events []kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]MessageDTO, 0, len(events))
	for _, e := range events {
		row, err := FromEvent(e)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

// Pending returns unpublished messages oldest first. Rows are locked with
// SKIP LOCKED so concurrent relays never pick the same message when called
// inside a transaction.
func (r *GormOutboxRepository) Pending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var rows []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at, id").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		msg, msgErr := toMessage(row)
		if msgErr != nil {
			return nil, msgErr
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// MarkPublished stamps messages as relayed.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id IN ?", raw).
		Update("published_at", at.UTC()).Error
}
