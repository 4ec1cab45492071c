package order_test

import (
	"testing"
	"time"

	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/core/domain/model/order"
	"packflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, itemType order.ItemType, quantity int, price string) order.Item {
	t.Helper()
	it, err := order.NewItem(itemType, quantity, decimal.RequireFromString(price), "widget", "")
	require.NoError(t, err)
	return it
}

func mustStamp(t *testing.T, actor kernel.UUID, at time.Time) kernel.Stamp {
	t.Helper()
	s, err := kernel.NewStamp(actor, at)
	require.NoError(t, err)
	return s
}

func TestNewItem(t *testing.T) {
	t.Run("should create a valid item", func(t *testing.T) {
		it, err := order.NewItem(order.ItemTypeB, 3, decimal.RequireFromString("2.50"), " box ", "photos/1.jpg")

		require.NoError(t, err)
		require.NoError(t, it.Validate())
		assert.Equal(t, order.ItemTypeB, it.Type())
		assert.Equal(t, 3, it.Quantity())
		assert.True(t, decimal.RequireFromString("7.5").Equal(it.Subtotal()))
		assert.Equal(t, "photos/1.jpg", it.PhotoPath())
	})

	t.Run("should join every validation error", func(t *testing.T) {
		_, err := order.NewItem(order.UnknownItemType, 0, decimal.RequireFromString("-1"), "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "description")
	})

	t.Run("should keep prices within numeric(12,2)", func(t *testing.T) {
		tests := []struct {
			price   string
			wantErr error
		}{
			{price: "0"},
			{price: "10.5"},
			{price: "10.50"},
			{price: "10.500"},
			{price: "9999999999.99"},
			{price: "10.555", wantErr: errs.ErrValueIsInvalid},
			{price: "0.001", wantErr: errs.ErrValueIsInvalid},
			{price: "10000000000", wantErr: errs.ErrValueIsOutOfRange},
			{price: "12345678901.5", wantErr: errs.ErrValueIsOutOfRange},
			{price: "-0.01", wantErr: errs.ErrValueIsOutOfRange},
		}
		for _, tt := range tests {
			_, err := order.NewItem(order.ItemTypeA, 1, decimal.RequireFromString(tt.price), "pouch", "")
			if tt.wantErr == nil {
				assert.NoError(t, err, tt.price)
			} else {
				assert.ErrorIs(t, err, tt.wantErr, tt.price)
			}
		}
	})

	t.Run("should reject a zero value item", func(t *testing.T) {
		var it order.Item
		assert.ErrorIs(t, it.Validate(), order.ErrItemIsNotConstructed)
	})

	t.Run("should parse item type codes", func(t *testing.T) {
		tp, err := order.ParseItemType("C")
		require.NoError(t, err)
		assert.Equal(t, order.ItemTypeC, tp)

		_, err = order.ParseItemType("D")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	staff := kernel.NewUUID()
	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("should submit in NEW with a submitted event", func(t *testing.T) {
		items := []order.Item{mustItem(t, order.ItemTypeA, 2, "10.00"), mustItem(t, order.ItemTypeC, 1, "0.99")}

		o, err := order.NewOrder(id, "Ada Lovelace", "+44 20 0000", items, staff, at)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.New, o.Status())
		assert.True(t, o.CreatedBy().IsEqual(staff))
		assert.Equal(t, at, o.CreatedAt())
		assert.Equal(t, at, o.UpdatedAt())
		assert.Len(t, o.Items(), 2)
		assert.Empty(t, o.Stamps())
		assert.True(t, decimal.RequireFromString("20.99").Equal(o.Total()))

		events := o.DomainEvents()
		require.Len(t, events, 1)
		submitted, ok := events[0].(order.SubmittedEvent)
		require.True(t, ok)
		assert.Equal(t, order.SubmittedEventName, submitted.EventName())
		assert.True(t, submitted.AggregateID().IsEqual(id))
		assert.Equal(t, 2, submitted.ItemCount)
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder(id, "Ada", "1", nil, staff, at)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should join customer and identity errors", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, "  ", "", []order.Item{mustItem(t, order.ItemTypeA, 1, "1")}, kernel.UUID{}, at)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "customerName")
		assert.Contains(t, err.Error(), "customerPhone")
		assert.Contains(t, err.Error(), "createdBy")
	})

	t.Run("should not alias the caller's items", func(t *testing.T) {
		items := []order.Item{mustItem(t, order.ItemTypeA, 1, "1")}
		o, err := order.NewOrder(id, "Ada", "1", items, staff, at)
		require.NoError(t, err)

		items[0] = mustItem(t, order.ItemTypeB, 9, "9")

		assert.Equal(t, order.ItemTypeA, o.Items()[0].Type())
	})
}

func TestOrder_Advance(t *testing.T) {
	staff := kernel.NewUUID()
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), "Ada", "1", []order.Item{mustItem(t, order.ItemTypeA, 1, "1")}, staff, start)
		require.NoError(t, err)
		o.ClearDomainEvents()
		return o
	}

	t.Run("should stamp each stage with increasing times along the happy path", func(t *testing.T) {
		o := newOrder(t)
		steps := []struct {
			stage order.Stage
			to    order.Status
		}{
			{order.Review, order.SAPending},
			{order.StageA, order.SBPending},
			{order.StageB, order.SCPending},
			{order.StageC, order.PackagingPending},
			{order.StagePackaging, order.DispatchYet},
			{order.StageDispatch, order.DispatchReached},
		}

		for i, step := range steps {
			actor := kernel.NewUUID()
			at := start.Add(time.Duration(i+1) * time.Hour)

			require.NoError(t, o.Advance(step.stage, step.to, mustStamp(t, actor, at)))

			assert.Equal(t, step.to, o.Status())
			stamp, ok := o.Stamp(step.stage)
			require.True(t, ok)
			assert.True(t, stamp.Actor().IsEqual(actor))
			assert.Equal(t, at, stamp.At())
			assert.Equal(t, at, o.UpdatedAt())
		}

		assert.Len(t, o.Stamps(), 6)
		assert.Len(t, o.DomainEvents(), 6)
		for i := 1; i < len(steps); i++ {
			prev, _ := o.Stamp(steps[i-1].stage)
			cur, _ := o.Stamp(steps[i].stage)
			assert.True(t, cur.At().After(prev.At()))
		}
	})

	t.Run("should reject at review and stay terminal", func(t *testing.T) {
		o := newOrder(t)
		reviewer := kernel.NewUUID()

		require.NoError(t, o.Advance(order.Review, order.Rejected, mustStamp(t, reviewer, start.Add(time.Minute))))

		assert.Equal(t, order.Rejected, o.Status())
		stamp, ok := o.Stamp(order.Review)
		require.True(t, ok)
		assert.True(t, stamp.Actor().IsEqual(reviewer))

		err := o.Advance(order.Review, order.SAPending, mustStamp(t, reviewer, start.Add(2*time.Minute)))
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Rejected, o.Status())
	})

	t.Run("should leave the order untouched on an illegal move", func(t *testing.T) {
		o := newOrder(t)

		err := o.Advance(order.StageDispatch, order.DispatchReached, mustStamp(t, staff, start.Add(time.Minute)))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.New, o.Status())
		assert.Empty(t, o.Stamps())
		assert.Empty(t, o.DomainEvents())
		assert.Equal(t, start, o.UpdatedAt())
	})

	t.Run("should record the transition in an advanced event", func(t *testing.T) {
		o := newOrder(t)
		at := start.Add(time.Minute)

		require.NoError(t, o.Advance(order.Review, order.SAPending, mustStamp(t, staff, at)))

		events := o.DomainEvents()
		require.Len(t, events, 1)
		advanced, ok := events[0].(order.AdvancedEvent)
		require.True(t, ok)
		assert.Equal(t, "review", advanced.Stage)
		assert.Equal(t, "NEW", advanced.From)
		assert.Equal(t, "SA_PENDING", advanced.To)
		assert.Equal(t, at, advanced.OccurredAt())
	})

	t.Run("should reject an unconstructed stamp", func(t *testing.T) {
		o := newOrder(t)
		err := o.Advance(order.Review, order.SAPending, kernel.Stamp{})
		require.ErrorIs(t, err, kernel.ErrStampIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	staff := kernel.NewUUID()
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	items := []order.Item{mustItem(t, order.ItemTypeA, 1, "1")}

	t.Run("should restore stamps without recording events", func(t *testing.T) {
		stamps := map[order.Stage]kernel.Stamp{
			order.Review: mustStamp(t, staff, created.Add(time.Hour)),
			order.StageA: mustStamp(t, staff, created.Add(2*time.Hour)),
		}

		o, err := order.RestoreOrder(id, "Ada", "1", items, staff, order.SBPending, stamps, created, created.Add(2*time.Hour))

		require.NoError(t, err)
		assert.Equal(t, order.SBPending, o.Status())
		assert.Len(t, o.Stamps(), 2)
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should reject unknown status and stage", func(t *testing.T) {
		stamps := map[order.Stage]kernel.Stamp{order.UnknownStage: mustStamp(t, staff, created)}

		o, err := order.RestoreOrder(id, "Ada", "1", items, staff, order.Unknown, stamps, created, created)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "is not a valid stage")
	})

	t.Run("should flag a zero value order", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
