package queries

import (
	"errors"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/kernel"
	"packflow/internal/pkg/guard"
)

var ErrGetComplaintQueryIsNotConstructed = errors.New(
	"GetComplaintQuery must be created via NewGetComplaintQuery constructor",
)

// GetComplaintQuery reads one complaint with its order and identities resolved.
type GetComplaintQuery struct {
	actor       *access.Actor
	complaintID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetComplaintQuery(actor *access.Actor, complaintID kernel.UUID) (GetComplaintQuery, error) {
	if err := errors.Join(actor.Validate(), complaintID.Validate()); err != nil {
		return GetComplaintQuery{}, err
	}
	return GetComplaintQuery{actor: actor, complaintID: complaintID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetComplaintQuery) Validate() error {
	return q.guard.Validate(ErrGetComplaintQueryIsNotConstructed)
}

func (q GetComplaintQuery) Actor() *access.Actor     { return q.actor }
func (q GetComplaintQuery) ComplaintID() kernel.UUID { return q.complaintID }
