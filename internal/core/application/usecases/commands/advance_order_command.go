package commands

import (
	"errors"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/core/domain/model/order"
	"packflow/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand asks to move an order to target on behalf of the staff
// member acting at stage.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand(actor, orderID, order.StageB, order.SCPending)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	actor   *access.Actor
	orderID kernel.UUID
	stage   order.Stage
	target  order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand validates the identifiers and enum values. Whether the
// move is legal is decided against the stored order.
func NewAdvanceOrderCommand(
	actor *access.Actor,
	orderID kernel.UUID,
	stage order.Stage,
	target order.Status,
) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		stage.Validate(),
		target.Validate(),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}
	cmd.actor, cmd.orderID, cmd.stage, cmd.target = actor, orderID, stage, target

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) Actor() *access.Actor { return c.actor }
func (c AdvanceOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c AdvanceOrderCommand) Stage() order.Stage   { return c.stage }
func (c AdvanceOrderCommand) Target() order.Status { return c.target }
