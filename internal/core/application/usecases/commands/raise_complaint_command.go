package commands

import (
	"errors"
	"strings"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/pkg/errs"
	"packflow/internal/pkg/guard"
)

var ErrRaiseComplaintCommandIsNotConstructed = errors.New(
	"RaiseComplaintCommand must be created via NewRaiseComplaintCommand constructor",
)

// RaiseComplaintCommand opens a complaint against an order from one of the boards.
type RaiseComplaintCommand struct { //nolint:recvcheck //using for validation
	actor       *access.Actor
	complaintID kernel.UUID
	orderID     kernel.UUID
	section     access.Section
	description string

	guard guard.ConstructorGuard
}

// NewRaiseComplaintCommand creates a command to raise a complaint.
func NewRaiseComplaintCommand(
	actor *access.Actor,
	complaintID, orderID kernel.UUID,
	section access.Section,
	description string,
) (RaiseComplaintCommand, error) {
	cmd := RaiseComplaintCommand{
		guard: guard.NewConstructorGuard(),
	}

	var descriptionErr error
	if strings.TrimSpace(description) == "" {
		descriptionErr = errs.NewValueIsRequiredError("description")
	}

	if err := errors.Join(
		actor.Validate(),
		complaintID.Validate(),
		orderID.Validate(),
		section.Validate(),
		descriptionErr,
	); err != nil {
		return RaiseComplaintCommand{}, err
	}
	cmd.actor, cmd.complaintID, cmd.orderID = actor, complaintID, orderID
	cmd.section, cmd.description = section, description

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RaiseComplaintCommand) Validate() error {
	return c.guard.Validate(ErrRaiseComplaintCommandIsNotConstructed)
}

func (c RaiseComplaintCommand) Actor() *access.Actor    { return c.actor }
func (c RaiseComplaintCommand) ComplaintID() kernel.UUID { return c.complaintID }
func (c RaiseComplaintCommand) OrderID() kernel.UUID     { return c.orderID }
func (c RaiseComplaintCommand) Section() access.Section  { return c.section }
func (c RaiseComplaintCommand) Description() string      { return c.description }
