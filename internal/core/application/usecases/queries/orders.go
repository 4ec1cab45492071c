package queries

import (
	"context"
	"time"

	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderColumns = `
	id, customer_name, customer_phone, created_by, status,
	reviewed_by, reviewed_at,
	sa_processed_by, sa_processed_at,
	sb_processed_by, sb_processed_at,
	sc_processed_by, sc_processed_at,
	packaged_by, packaged_at,
	dispatched_by, dispatched_at,
	created_at, updated_at`

type orderRow struct {
	ID            uuid.UUID  `gorm:"column:id"`
	CustomerName  string     `gorm:"column:customer_name"`
	CustomerPhone string     `gorm:"column:customer_phone"`
	CreatedBy     uuid.UUID  `gorm:"column:created_by"`
	Status        string     `gorm:"column:status"`
	ReviewedBy    *uuid.UUID `gorm:"column:reviewed_by"`
	ReviewedAt    *time.Time `gorm:"column:reviewed_at"`
	SAProcessedBy *uuid.UUID `gorm:"column:sa_processed_by"`
	SAProcessedAt *time.Time `gorm:"column:sa_processed_at"`
	SBProcessedBy *uuid.UUID `gorm:"column:sb_processed_by"`
	SBProcessedAt *time.Time `gorm:"column:sb_processed_at"`
	SCProcessedBy *uuid.UUID `gorm:"column:sc_processed_by"`
	SCProcessedAt *time.Time `gorm:"column:sc_processed_at"`
	PackagedBy    *uuid.UUID `gorm:"column:packaged_by"`
	PackagedAt    *time.Time `gorm:"column:packaged_at"`
	DispatchedBy  *uuid.UUID `gorm:"column:dispatched_by"`
	DispatchedAt  *time.Time `gorm:"column:dispatched_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

type stampSlot struct {
	stage order.Stage
	by    *uuid.UUID
	at    *time.Time
}

func (r orderRow) slots() []stampSlot {
	return []stampSlot{
		{order.Review, r.ReviewedBy, r.ReviewedAt},
		{order.StageA, r.SAProcessedBy, r.SAProcessedAt},
		{order.StageB, r.SBProcessedBy, r.SBProcessedAt},
		{order.StageC, r.SCProcessedBy, r.SCProcessedAt},
		{order.StagePackaging, r.PackagedBy, r.PackagedAt},
		{order.StageDispatch, r.DispatchedBy, r.DispatchedAt},
	}
}

type itemRow struct {
	OrderID     uuid.UUID       `gorm:"column:order_id"`
	ItemType    string          `gorm:"column:item_type"`
	Quantity    int             `gorm:"column:quantity"`
	Price       decimal.Decimal `gorm:"column:price"`
	Description string          `gorm:"column:description"`
	PhotoPath   string          `gorm:"column:photo_path"`
}

// loadOrders runs one orders query, then fetches items and identities for the
// whole page in two more round trips. Rows come back newest first.
func loadOrders(ctx context.Context, db *gorm.DB, where string, args ...any) ([]OrderResponse, error) {
	var rows []orderRow
	err := db.WithContext(ctx).
		Raw(`SELECT `+orderColumns+` FROM orders WHERE `+where+` ORDER BY created_at DESC, id`, args...).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return make([]OrderResponse, 0), nil
	}

	ids := make(pq.StringArray, 0, len(rows))
	identities := make(identitySet)
	for i := range rows {
		ids = append(ids, rows[i].ID.String())
		identities.add(&rows[i].CreatedBy)
		for _, slot := range rows[i].slots() {
			identities.add(slot.by)
		}
	}

	var items []itemRow
	err = db.WithContext(ctx).
		Raw(`
			SELECT order_id, item_type, quantity, price, description, photo_path
			FROM order_items
			WHERE order_id = ANY(?::uuid[])
			ORDER BY order_id, position`, ids).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	itemsByOrder := make(map[uuid.UUID][]OrderItemResponse, len(rows))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], OrderItemResponse{
			ItemType:    item.ItemType,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Description: item.Description,
			PhotoPath:   item.PhotoPath,
		})
	}

	if err = identities.resolve(ctx, db); err != nil {
		return nil, err
	}

	out := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		resp, convErr := toOrderResponse(row, itemsByOrder[row.ID], identities)
		if convErr != nil {
			return nil, convErr
		}
		out = append(out, resp)
	}
	return out, nil
}

func toOrderResponse(row orderRow, items []OrderItemResponse, identities identitySet) (OrderResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	if items == nil {
		items = make([]OrderItemResponse, 0)
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	stamps := make(map[string]StampResponse)
	for _, slot := range row.slots() {
		if stamp, ok := identities.stamp(slot.by, slot.at); ok {
			stamps[slot.stage.String()] = stamp
		}
	}

	return OrderResponse{
		ID:            id,
		CustomerName:  row.CustomerName,
		CustomerPhone: row.CustomerPhone,
		Items:         items,
		Total:         total,
		Status:        row.Status,
		CreatedBy:     identities.get(row.CreatedBy),
		Stamps:        stamps,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}
