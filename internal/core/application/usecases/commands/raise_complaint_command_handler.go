package commands

import (
	"context"
	"time"

	"packflow/internal/core/domain/model/complaint"
)

// RaiseComplaintCommandHandler opens complaints. Any signed-in staff member may
// raise one; the referenced order must exist. The order itself is not modified.
type RaiseComplaintCommandHandler struct {
	uowFactory ComplaintUoWFactory
	now        func() time.Time
}

// NewRaiseComplaintCommandHandler creates a handler for raising complaints.
func NewRaiseComplaintCommandHandler(uowFactory ComplaintUoWFactory) RaiseComplaintCommandHandler {
	return RaiseComplaintCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle verifies the order exists and stores the new complaint with its
// ComplaintRaised event.
func (h *RaiseComplaintCommandHandler) Handle(ctx context.Context, cmd RaiseComplaintCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	c, err := complaint.NewComplaint(
		cmd.ComplaintID(),
		cmd.OrderID(),
		cmd.Section(),
		cmd.Description(),
		cmd.Actor().ID(),
		h.now(),
	)
	if err != nil {
		return err
	}

	if err = uow.ComplaintRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
