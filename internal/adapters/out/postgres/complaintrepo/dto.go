// Package complaintrepo persists complaint aggregates with GORM.
package complaintrepo

import (
	"time"

	"packflow/internal/adapters/out/postgres/orderrepo"
	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/complaint"
	"packflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ComplaintDTO is the database shape of a complaint. OrderID references orders.
type ComplaintDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Section     string     `gorm:"type:varchar(16);not null"`
	Description string     `gorm:"not null"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	Status      string     `gorm:"type:varchar(16);not null;index"`
	ResolvedBy  *uuid.UUID `gorm:"type:uuid"`
	ResolvedAt  *time.Time
	CreatedAt   time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`

	Order orderrepo.OrderDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:RESTRICT"`
}

func (ComplaintDTO) TableName() string {
	return "complaints"
}

func fromDomain(c *complaint.Complaint) ComplaintDTO {
	dto := ComplaintDTO{
		ID:          c.ID().Bytes(),
		OrderID:     c.OrderID().Bytes(),
		Section:     c.Section().String(),
		Description: c.Description(),
		CreatedBy:   c.CreatedBy().Bytes(),
		Status:      c.Status().String(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
	if stamp, ok := c.Resolution(); ok {
		by, at := stamp.Actor().Bytes(), stamp.At()
		dto.ResolvedBy, dto.ResolvedAt = &by, &at
	}
	return dto
}

func toDomain(dto ComplaintDTO) (*complaint.Complaint, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}
	section, err := access.ParseSection(dto.Section)
	if err != nil {
		return nil, err
	}
	status, err := complaint.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var resolved *kernel.Stamp
	if dto.ResolvedBy != nil && dto.ResolvedAt != nil {
		by, byErr := kernel.UUIDFromBytes(dto.ResolvedBy[:])
		if byErr != nil {
			return nil, byErr
		}
		stamp, stampErr := kernel.NewStamp(by, *dto.ResolvedAt)
		if stampErr != nil {
			return nil, stampErr
		}
		resolved = &stamp
	}

	return complaint.RestoreComplaint(
		id, orderID, section, dto.Description, createdBy, status, resolved, dto.CreatedAt, dto.UpdatedAt,
	)
}
