package commands

import (
	"errors"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/pkg/guard"
)

var ErrResolveComplaintCommandIsNotConstructed = errors.New(
	"ResolveComplaintCommand must be created via NewResolveComplaintCommand constructor",
)

// ResolveComplaintCommand closes an open complaint.
type ResolveComplaintCommand struct { //nolint:recvcheck //using for validation
	actor       *access.Actor
	complaintID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResolveComplaintCommand creates a command to resolve a complaint.
func NewResolveComplaintCommand(actor *access.Actor, complaintID kernel.UUID) (ResolveComplaintCommand, error) {
	cmd := ResolveComplaintCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(actor.Validate(), complaintID.Validate()); err != nil {
		return ResolveComplaintCommand{}, err
	}
	cmd.actor, cmd.complaintID = actor, complaintID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveComplaintCommand) Validate() error {
	return c.guard.Validate(ErrResolveComplaintCommandIsNotConstructed)
}

func (c ResolveComplaintCommand) Actor() *access.Actor    { return c.actor }
func (c ResolveComplaintCommand) ComplaintID() kernel.UUID { return c.complaintID }
