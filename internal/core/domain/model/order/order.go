package order

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"time"

	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order is submitted without lines.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root of the workflow. It owns the status and the
// per-stage audit stamps.
//
// Order follows these invariants:
//   - Customer name and phone are required; items are non-empty and individually valid
//   - createdBy never changes after submission
//   - status only changes through Advance, which consults the transition table
//   - an audit stamp is written only by its own stage and is never cleared;
//     re-processing the same stage overwrites it (the history keeps every actor)
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id            kernel.UUID
	customerName  string
	customerPhone string
	items         []Item
	createdBy     kernel.UUID
	status        Status
	stamps        map[Stage]kernel.Stamp
	createdAt     time.Time
	updatedAt     time.Time

	events []kernel.DomainEvent

	isConstructed bool
}

// NewOrder submits an order in status NEW on behalf of createdBy.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerName, customerPhone: required contact details
//   - items: at least one valid Item
//   - createdBy: the staff member entering the order
//   - at: submission time
//
// Returns the order, which carries a SubmittedEvent, or every validation error
// joined together.
func NewOrder(
	id kernel.UUID,
	customerName, customerPhone string,
	items []Item,
	createdBy kernel.UUID,
	at time.Time,
) (*Order, error) {
	o := &Order{
		status:        New,
		stamps:        make(map[Stage]kernel.Stamp),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerName, customerPhone),
		o.setItems(items),
		o.setCreatedBy(createdBy),
		o.setTimes(at, at),
	); err != nil {
		return nil, err
	}

	o.record(SubmittedEvent{
		ID:           kernel.NewUUID(),
		OrderID:      o.id,
		CustomerName: o.customerName,
		ItemCount:    len(o.items),
		CreatedBy:    o.createdBy,
		At:           o.createdAt,
	})

	return o, nil
}

// RestoreOrder rebuilds an order from persistence. It runs the same validation as
// NewOrder and additionally checks that every stamp belongs to a known stage.
// No events are recorded.
func RestoreOrder(
	id kernel.UUID,
	customerName, customerPhone string,
	items []Item,
	createdBy kernel.UUID,
	status Status,
	stamps map[Stage]kernel.Stamp,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        status,
		stamps:        make(map[Stage]kernel.Stamp, len(stamps)),
		isConstructed: true,
	}

	stampErrs := make([]error, 0, len(stamps))
	for stage, stamp := range stamps {
		stampErrs = append(stampErrs, stage.Validate(), stamp.Validate())
		o.stamps[stage] = stamp
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerName, customerPhone),
		o.setItems(items),
		o.setCreatedBy(createdBy),
		o.setTimes(createdAt, updatedAt),
		status.Validate(),
		errors.Join(stampErrs...),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID        { return o.id }
func (o *Order) CustomerName() string   { return o.customerName }
func (o *Order) CustomerPhone() string  { return o.customerPhone }
func (o *Order) CreatedBy() kernel.UUID { return o.createdBy }
func (o *Order) Status() Status         { return o.status }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// Stamp returns the audit stamp of stage, if the stage has acted.
func (o *Order) Stamp(stage Stage) (kernel.Stamp, bool) {
	s, ok := o.stamps[stage]
	return s, ok
}

// Stamps returns a copy of every recorded audit stamp.
func (o *Order) Stamps() map[Stage]kernel.Stamp {
	return maps.Clone(o.stamps)
}

// Advance moves the order to target through stage and stamps the stage with by.
//
// This method enforces the following business rules:
//   - the (current status, stage, target) triple must be in the transition table
//   - terminal statuses never change
//   - the stage's audit stamp is overwritten with by; other stamps are untouched
//
// Returns:
//   - nil on success; the order then carries an AdvancedEvent
//   - InvalidTransitionError for illegal moves
//
// Example:
//
//	stamp, _ := kernel.NewStamp(actor.ID(), time.Now())
//	if err := o.Advance(order.Review, order.SAPending, stamp); err != nil {
//	    // the order was not NEW
//	}
func (o *Order) Advance(stage Stage, target Status, by kernel.Stamp) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := by.Validate(); err != nil {
		return err
	}

	next, err := o.status.Advance(stage, target)
	if err != nil {
		return err
	}

	from := o.status
	o.status = next
	o.stamps[stage] = by
	o.updatedAt = by.At()

	o.record(AdvancedEvent{
		ID:      kernel.NewUUID(),
		OrderID: o.id,
		Stage:   stage.String(),
		From:    from.String(),
		To:      next.String(),
		Actor:   by.Actor(),
		At:      by.At(),
	})
	return nil
}

// Total is the sum of the line subtotals.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	return slices.Clone(o.events)
}

// ClearDomainEvents forgets recorded events once they are stored.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) record(e kernel.DomainEvent) {
	o.events = append(o.events, e)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(name, phone string) error {
	name, phone = strings.TrimSpace(name), strings.TrimSpace(phone)

	var nameErr, phoneErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("customerName")
	}
	if phone == "" {
		phoneErr = errs.NewValueIsRequiredError("customerPhone")
	}
	o.customerName, o.customerPhone = name, phone
	return errors.Join(nameErr, phoneErr)
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	itemErrs := make([]error, 0, len(items))
	for _, it := range items {
		itemErrs = append(itemErrs, it.Validate())
	}
	if err := errors.Join(itemErrs...); err != nil {
		return err
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}
	o.createdBy = createdBy
	return nil
}

func (o *Order) setTimes(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt.UTC().Truncate(time.Microsecond)
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	o.updatedAt = updatedAt.UTC().Truncate(time.Microsecond)
	return nil
}
