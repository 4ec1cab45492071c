package commands

import (
	"context"
	"time"

	"packflow/internal/core/domain/model/order"
	"packflow/internal/core/domain/services"
)

// SubmitOrderCommandHandler creates orders in status NEW.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory, services.NewStageGate())
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err // PermissionDenied, validation errors or storage errors
//	}
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.StageGate
	now        func() time.Time
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
func NewSubmitOrderCommandHandler(uowFactory OrderUoWFactory, gate services.StageGate) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		now:        time.Now,
	}
}

// Handle checks that the actor holds read_write on createOrder, builds the
// order and persists it together with its OrderSubmitted event.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.gate.AuthorizeSubmit(cmd.Actor()); err != nil {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.Items(),
		cmd.Actor().ID(),
		h.now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
