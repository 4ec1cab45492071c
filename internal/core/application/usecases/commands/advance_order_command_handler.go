package commands

import (
	"context"
	"time"

	"packflow/internal/core/domain/services"
)

// AdvanceOrderCommandHandler applies stage transitions.
//
// The order is written back with a compare-and-set on the status it was read
// in, so two staff members acting on the same order cannot both succeed.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.StageGate
	now        func() time.Time
}

// NewAdvanceOrderCommandHandler creates a handler for stage transitions.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, gate services.StageGate) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		now:        time.Now,
	}
}

// Handle checks permission first, then loads the order and applies the move.
//
// Returns:
//   - PermissionDeniedError when the actor lacks read_write on the stage's section
//   - ObjectNotFoundError when the order does not exist
//   - InvalidTransitionError when the move is illegal from the stored status
//   - ConflictError when another request changed the status in between
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.gate.AuthorizeStage(cmd.Actor(), cmd.Stage()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	expected := o.Status()
	if err = h.gate.Advance(cmd.Actor(), o, cmd.Stage(), cmd.Target(), h.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o, expected); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
