package commands

import (
	"context"
	"time"

	"packflow/internal/core/domain/services"
)

// ResolveComplaintCommandHandler resolves complaints. Resolving twice is
// rejected and the first resolver is kept.
type ResolveComplaintCommandHandler struct {
	uowFactory ComplaintUoWFactory
	gate       services.StageGate
	now        func() time.Time
}

// NewResolveComplaintCommandHandler creates a handler for resolving complaints.
func NewResolveComplaintCommandHandler(uowFactory ComplaintUoWFactory, gate services.StageGate) ResolveComplaintCommandHandler {
	return ResolveComplaintCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		now:        time.Now,
	}
}

// Handle checks read_write on complaints, loads the complaint and resolves it
// with a compare-and-set on its open status.
func (h *ResolveComplaintCommandHandler) Handle(ctx context.Context, cmd ResolveComplaintCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.gate.AuthorizeResolve(cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ComplaintRepository()
	c, err := repo.Get(ctx, cmd.ComplaintID())
	if err != nil {
		return err
	}

	expected := c.Status()
	if err = h.gate.Resolve(cmd.Actor(), c, h.now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, c, expected); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
