package services

import (
	"time"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/complaint"
	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/core/domain/model/order"
)

// StageGate is the domain service that decides whether an actor may act on the
// workflow, and applies the action with the actor's stamp.
//
// Business rules:
//   - submitting requires read_write on createOrder
//   - acting at a stage requires read_write on the stage's gating section
//   - resolving a complaint requires read_write on complaints
//   - pending or deactivated accounts are refused everywhere; admins hold no bypass
//
// Example usage:
//
//	gate := services.NewStageGate()
//	if err := gate.Advance(actor, o, order.StageB, order.SCPending, time.Now()); err != nil {
//	    return err // PermissionDenied or InvalidTransition
//	}
type StageGate struct{}

// NewStageGate creates a StageGate.
func NewStageGate() StageGate {
	return StageGate{}
}

// AuthorizeSubmit checks that actor may enter new orders.
func (StageGate) AuthorizeSubmit(actor *access.Actor) error {
	return actor.Require(access.CreateOrder, access.ReadWrite)
}

// AuthorizeStage checks that actor may act at stage.
func (StageGate) AuthorizeStage(actor *access.Actor, stage order.Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	return actor.Require(stage.Gate(), access.ReadWrite)
}

// AuthorizeResolve checks that actor may close complaints.
func (StageGate) AuthorizeResolve(actor *access.Actor) error {
	return actor.Require(access.Complaints, access.ReadWrite)
}

// Advance authorizes actor at stage and moves o to target, stamping the stage
// with (actor, at).
//
// Returns:
//   - PermissionDeniedError when the actor lacks read_write on the stage's section
//   - InvalidTransitionError when the move is not in the transition table
//   - nil on success; o is then mutated and carries an AdvancedEvent
func (g StageGate) Advance(actor *access.Actor, o *order.Order, stage order.Stage, target order.Status, at time.Time) error {
	if err := g.AuthorizeStage(actor, stage); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}
	stamp, err := kernel.NewStamp(actor.ID(), at)
	if err != nil {
		return err
	}
	return o.Advance(stage, target, stamp)
}

// Resolve authorizes actor on the complaints section and closes c.
func (g StageGate) Resolve(actor *access.Actor, c *complaint.Complaint, at time.Time) error {
	if err := g.AuthorizeResolve(actor); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	stamp, err := kernel.NewStamp(actor.ID(), at)
	if err != nil {
		return err
	}
	return c.Resolve(stamp)
}
