package queries

import (
	"errors"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/core/domain/model/complaint"
	"packflow/internal/pkg/guard"
)

var ErrListComplaintsQueryIsNotConstructed = errors.New(
	"ListComplaintsQuery must be created via NewListComplaintsQuery constructor",
)

// ListComplaintsQuery lists complaints newest first, filtered by key
// (open, resolved or all; empty means all).
type ListComplaintsQuery struct {
	actor    *access.Actor
	statuses []complaint.Status

	guard guard.ConstructorGuard
}

func NewListComplaintsQuery(actor *access.Actor, key string) (ListComplaintsQuery, error) {
	statuses, keyErr := complaint.Statuses(key)
	if err := errors.Join(actor.Validate(), keyErr); err != nil {
		return ListComplaintsQuery{}, err
	}
	return ListComplaintsQuery{actor: actor, statuses: statuses, guard: guard.NewConstructorGuard()}, nil
}

func (q ListComplaintsQuery) Validate() error {
	return q.guard.Validate(ErrListComplaintsQueryIsNotConstructed)
}

func (q ListComplaintsQuery) Actor() *access.Actor { return q.actor }

func (q ListComplaintsQuery) Statuses() []complaint.Status {
	return append([]complaint.Status(nil), q.statuses...)
}
