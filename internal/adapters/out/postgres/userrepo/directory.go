package userrepo

import (
	"context"
	"errors"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDirectory implements ports.ActorDirectory over the users table.
type GormDirectory struct {
	db *gorm.DB
}

// NewGormDirectory creates a directory reading through db.
func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

// Actor loads one account.
func (d *GormDirectory) Actor(ctx context.Context, id kernel.UUID) (*access.Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toActor(dto)
}

// Upsert inserts accounts or refreshes them by email. Used by the seeder.
// The ID of each element is overwritten with the stored id, which differs from
// the supplied one when the email already existed.
func (d *GormDirectory) Upsert(ctx context.Context, users []UserDTO) error {
	if len(users) == 0 {
		return nil
	}
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"full_name", "phone", "role", "is_active", "permissions", "updated_at"}),
	}, clause.Returning{Columns: []clause.Column{{Name: "id"}}}).Create(&users).Error
}
