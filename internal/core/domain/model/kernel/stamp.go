package kernel

import (
	"errors"
	"time"

	"packflow/internal/pkg/errs"
	"packflow/internal/pkg/guard"
)

// ErrStampIsNotConstructed is returned when validating a zero-value Stamp.
var ErrStampIsNotConstructed = errors.New("Stamp must be created via NewStamp constructor")

// Stamp is an audit pair: which actor performed an action, and when.
// It is immutable once built.
type Stamp struct {
	actor UUID
	at    time.Time

	guard guard.ConstructorGuard
}

// NewStamp builds a Stamp. The time is normalized to UTC and truncated to
// microseconds, the precision postgres stores.
func NewStamp(actor UUID, at time.Time) (Stamp, error) {
	if err := actor.Validate(); err != nil {
		return Stamp{}, err
	}
	if at.IsZero() {
		return Stamp{}, errs.NewValueIsRequiredError("at")
	}

	return Stamp{
		actor: actor,
		at:    at.UTC().Truncate(time.Microsecond),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Actor returns the identifier of the actor who performed the action.
func (s Stamp) Actor() UUID {
	return s.actor
}

// At returns when the action was performed.
func (s Stamp) At() time.Time {
	return s.at
}

// Validate reports whether s was built via NewStamp.
func (s Stamp) Validate() error {
	return s.guard.Validate(ErrStampIsNotConstructed)
}
