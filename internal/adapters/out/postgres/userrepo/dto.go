// Package userrepo reads staff accounts from the users table shared with the
// identity service. Signup, password and permission editing happen there; this
// service only resolves accounts into actors.
package userrepo

import (
	"time"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserDTO is the database shape of a staff account. Permissions holds the
// section -> level matrix as JSONB; absent sections mean no_access.
type UserDTO struct {
	ID          uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	FullName    string                                `gorm:"not null"`
	Email       string                                `gorm:"not null;uniqueIndex"`
	Phone       string                                `gorm:"not null;default:''"`
	Role        string                                `gorm:"type:varchar(16);not null;default:pending"`
	IsActive    bool                                  `gorm:"not null;default:true"`
	Permissions datatypes.JSONType[map[string]string] `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

// NewUserDTO builds a row for seeding.
func NewUserDTO(
	id uuid.UUID,
	fullName, email, phone, role string,
	active bool,
	permissions map[string]string,
) UserDTO {
	if permissions == nil {
		permissions = map[string]string{}
	}
	return UserDTO{
		ID:          id,
		FullName:    fullName,
		Email:       email,
		Phone:       phone,
		Role:        role,
		IsActive:    active,
		Permissions: datatypes.NewJSONType(permissions),
	}
}

func toActor(dto UserDTO) (*access.Actor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := access.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	perms, err := access.PermissionsFromCodes(dto.Permissions.Data())
	if err != nil {
		return nil, err
	}
	return access.NewActor(id, dto.FullName, dto.Email, role, dto.IsActive, perms)
}
