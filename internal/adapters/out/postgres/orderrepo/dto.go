// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"errors"
	"time"

	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The six audit stamps are stored as nullable (by, at) column pairs.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName  string    `gorm:"not null"`
	CustomerPhone string    `gorm:"not null"`
	CreatedBy     uuid.UUID `gorm:"type:uuid;not null;index"`
	Status        string    `gorm:"type:varchar(32);not null;index"`

	ReviewedBy    *uuid.UUID `gorm:"type:uuid;column:reviewed_by"`
	ReviewedAt    *time.Time `gorm:"column:reviewed_at"`
	SAProcessedBy *uuid.UUID `gorm:"type:uuid;column:sa_processed_by"`
	SAProcessedAt *time.Time `gorm:"column:sa_processed_at"`
	SBProcessedBy *uuid.UUID `gorm:"type:uuid;column:sb_processed_by"`
	SBProcessedAt *time.Time `gorm:"column:sb_processed_at"`
	SCProcessedBy *uuid.UUID `gorm:"type:uuid;column:sc_processed_by"`
	SCProcessedAt *time.Time `gorm:"column:sc_processed_at"`
	PackagedBy    *uuid.UUID `gorm:"type:uuid;column:packaged_by"`
	PackagedAt    *time.Time `gorm:"column:packaged_at"`
	DispatchedBy  *uuid.UUID `gorm:"type:uuid;column:dispatched_by"`
	DispatchedAt  *time.Time `gorm:"column:dispatched_at"`

	CreatedAt time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order. Position keeps submission order.
type OrderItemDTO struct {
	OrderID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position    int             `gorm:"primaryKey;autoIncrement:false"`
	ItemType    string          `gorm:"type:varchar(1);not null"`
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Description string          `gorm:"not null"`
	PhotoPath   string
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderHistoryDTO is one row of the append-only transition log.
type OrderHistoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Stage      string    `gorm:"type:varchar(16);not null"`
	FromStatus string    `gorm:"type:varchar(32);not null"`
	ToStatus   string    `gorm:"type:varchar(32);not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	At         time.Time `gorm:"not null;index"`
}

func (OrderHistoryDTO) TableName() string {
	return "order_history"
}

// stampColumns returns pointers to the (by, at) pair backing stage.
func (d *OrderDTO) stampColumns(stage order.Stage) (**uuid.UUID, **time.Time) {
	switch stage {
	case order.Review:
		return &d.ReviewedBy, &d.ReviewedAt
	case order.StageA:
		return &d.SAProcessedBy, &d.SAProcessedAt
	case order.StageB:
		return &d.SBProcessedBy, &d.SBProcessedAt
	case order.StageC:
		return &d.SCProcessedBy, &d.SCProcessedAt
	case order.StagePackaging:
		return &d.PackagedBy, &d.PackagedAt
	case order.StageDispatch:
		return &d.DispatchedBy, &d.DispatchedAt
	case order.UnknownStage:
	}
	return nil, nil
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:            o.ID().Bytes(),
		CustomerName:  o.CustomerName(),
		CustomerPhone: o.CustomerPhone(),
		CreatedBy:     o.CreatedBy().Bytes(),
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}

	for stage, stamp := range o.Stamps() {
		byCol, atCol := dto.stampColumns(stage)
		if byCol == nil {
			continue
		}
		by, at := stamp.Actor().Bytes(), stamp.At()
		*byCol, *atCol = &by, &at
	}

	for i, it := range o.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:     dto.ID,
			Position:    i,
			ItemType:    it.Type().String(),
			Quantity:    it.Quantity(),
			Price:       it.Price(),
			Description: it.Description(),
			PhotoPath:   it.PhotoPath(),
		})
	}

	return dto
}

// toDomain converts a database DTO, with items preloaded, to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	var itemErrs []error
	for _, it := range dto.Items {
		itemType, typeErr := order.ParseItemType(it.ItemType)
		if typeErr != nil {
			itemErrs = append(itemErrs, typeErr)
			continue
		}
		item, itemErr := order.NewItem(itemType, it.Quantity, it.Price, it.Description, it.PhotoPath)
		if itemErr != nil {
			itemErrs = append(itemErrs, itemErr)
			continue
		}
		items = append(items, item)
	}
	if err = errors.Join(itemErrs...); err != nil {
		return nil, err
	}

	stamps := make(map[order.Stage]kernel.Stamp)
	for _, stage := range order.Stages() {
		byCol, atCol := dto.stampColumns(stage)
		if *byCol == nil || *atCol == nil {
			continue
		}
		actor, actorErr := kernel.UUIDFromBytes((**byCol)[:])
		if actorErr != nil {
			return nil, actorErr
		}
		stamp, stampErr := kernel.NewStamp(actor, **atCol)
		if stampErr != nil {
			return nil, stampErr
		}
		stamps[stage] = stamp
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.CustomerPhone,
		items,
		createdBy,
		status,
		stamps,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

// historyFromEvents turns the AdvancedEvents carried by o into history rows.
func historyFromEvents(o *order.Order) []OrderHistoryDTO {
	rows := make([]OrderHistoryDTO, 0)
	for _, e := range o.DomainEvents() {
		advanced, ok := e.(order.AdvancedEvent)
		if !ok {
			continue
		}
		rows = append(rows, OrderHistoryDTO{
			ID:         advanced.ID.Bytes(),
			OrderID:    advanced.OrderID.Bytes(),
			Stage:      advanced.Stage,
			FromStatus: advanced.From,
			ToStatus:   advanced.To,
			ActorID:    advanced.Actor.Bytes(),
			At:         advanced.At,
		})
	}
	return rows
}
