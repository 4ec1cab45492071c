package complaint

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/pkg/errs"
)

// ErrComplaintIsNotConstructed is returned when a Complaint instance was not created
// through NewComplaint or RestoreComplaint.
var ErrComplaintIsNotConstructed = errors.New("Complaint must be created via NewComplaint constructor")

// Complaint is an issue raised against an order.
//
// Invariants:
//   - section is one of the six order boards
//   - createdBy never changes
//   - the resolution stamp is present exactly when status is Resolved, and is set once
type Complaint struct {
	id          kernel.UUID
	orderID     kernel.UUID
	section     access.Section
	description string
	createdBy   kernel.UUID
	status      Status
	resolved    *kernel.Stamp
	createdAt   time.Time
	updatedAt   time.Time

	events []kernel.DomainEvent

	isConstructed bool
}

// NewComplaint opens a complaint against orderID. The caller is responsible for
// checking that the order exists.
func NewComplaint(
	id, orderID kernel.UUID,
	section access.Section,
	description string,
	createdBy kernel.UUID,
	at time.Time,
) (*Complaint, error) {
	c := &Complaint{
		status:        Open,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setIDs(id, orderID, createdBy),
		c.setSection(section),
		c.setDescription(description),
		c.setTimes(at, at),
	); err != nil {
		return nil, err
	}

	c.record(RaisedEvent{
		ID:          kernel.NewUUID(),
		ComplaintID: c.id,
		OrderID:     c.orderID,
		Section:     c.section.String(),
		CreatedBy:   c.createdBy,
		At:          c.createdAt,
	})
	return c, nil
}

// RestoreComplaint rebuilds a complaint from persistence. resolved must be non-nil
// exactly when status is Resolved.
func RestoreComplaint(
	id, orderID kernel.UUID,
	section access.Section,
	description string,
	createdBy kernel.UUID,
	status Status,
	resolved *kernel.Stamp,
	createdAt, updatedAt time.Time,
) (*Complaint, error) {
	c := &Complaint{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setIDs(id, orderID, createdBy),
		c.setSection(section),
		c.setDescription(description),
		c.setTimes(createdAt, updatedAt),
		status.Validate(),
		c.setResolved(status, resolved),
	); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate ensures the Complaint was properly constructed.
func (c *Complaint) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrComplaintIsNotConstructed
	}
	return nil
}

func (c *Complaint) ID() kernel.UUID         { return c.id }
func (c *Complaint) OrderID() kernel.UUID    { return c.orderID }
func (c *Complaint) Section() access.Section { return c.section }
func (c *Complaint) Description() string     { return c.description }
func (c *Complaint) CreatedBy() kernel.UUID  { return c.createdBy }
func (c *Complaint) Status() Status          { return c.status }
func (c *Complaint) CreatedAt() time.Time    { return c.createdAt }
func (c *Complaint) UpdatedAt() time.Time    { return c.updatedAt }

// Resolution returns the resolver stamp, if the complaint is resolved.
func (c *Complaint) Resolution() (kernel.Stamp, bool) {
	if c.resolved == nil {
		return kernel.Stamp{}, false
	}
	return *c.resolved, true
}

// Resolve closes an open complaint. A second resolve is an InvalidTransitionError
// and leaves the first resolver in place.
func (c *Complaint) Resolve(by kernel.Stamp) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := by.Validate(); err != nil {
		return err
	}
	if c.status != Open {
		return errs.NewInvalidTransitionError("complaint", c.status.String(), Resolved.String(), "resolve")
	}

	c.status = Resolved
	c.resolved = &by
	c.updatedAt = by.At()

	c.record(ResolvedEvent{
		ID:          kernel.NewUUID(),
		ComplaintID: c.id,
		OrderID:     c.orderID,
		ResolvedBy:  by.Actor(),
		At:          by.At(),
	})
	return nil
}

func (c *Complaint) DomainEvents() []kernel.DomainEvent {
	return slices.Clone(c.events)
}

func (c *Complaint) ClearDomainEvents() {
	c.events = nil
}

func (c *Complaint) record(e kernel.DomainEvent) {
	c.events = append(c.events, e)
}

func (c *Complaint) setIDs(id, orderID, createdBy kernel.UUID) error {
	var idErr, orderErr, creatorErr error
	if err := id.Validate(); err != nil {
		idErr = err
	}
	if err := orderID.Validate(); err != nil {
		orderErr = errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := createdBy.Validate(); err != nil {
		creatorErr = errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}
	c.id, c.orderID, c.createdBy = id, orderID, createdBy
	return errors.Join(idErr, orderErr, creatorErr)
}

func (c *Complaint) setSection(section access.Section) error {
	if !section.IsBoard() {
		return errs.NewValueIsInvalidErrorWithCause("section", fmt.Errorf("%s is not an order board", section))
	}
	c.section = section
	return nil
}

func (c *Complaint) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *Complaint) setResolved(status Status, resolved *kernel.Stamp) error {
	switch {
	case status == Resolved && resolved == nil:
		return errs.NewValueIsRequiredError("resolvedBy")
	case status != Resolved && resolved != nil:
		return errs.NewValueIsInvalidErrorWithCause("resolvedBy", fmt.Errorf("%s complaint cannot carry a resolver", status))
	case resolved != nil:
		if err := resolved.Validate(); err != nil {
			return err
		}
		stamp := *resolved
		c.resolved = &stamp
	}
	return nil
}

func (c *Complaint) setTimes(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	c.createdAt = createdAt.UTC().Truncate(time.Microsecond)
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	c.updatedAt = updatedAt.UTC().Truncate(time.Microsecond)
	return nil
}
