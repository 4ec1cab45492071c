package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel for workflow moves the current state forbids.
var ErrInvalidTransition = errors.New("transition is invalid")

// InvalidTransitionError describes a rejected move of Subject from From to To
// through Action.
type InvalidTransitionError struct {
	Subject string
	From    string
	To      string
	Action  string
	// Reason optionally says which rule rejected the move.
	Reason string
}

// NewInvalidTransitionError creates an InvalidTransitionError.
func NewInvalidTransitionError(subject, from, to, action string) *InvalidTransitionError {
	return &InvalidTransitionError{Subject: subject, From: from, To: to, Action: action}
}

// WithReason sets Reason and returns e.
func (e *InvalidTransitionError) WithReason(reason string) *InvalidTransitionError {
	e.Reason = reason
	return e
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("%s: %s cannot move from %s to %s via %s",
		ErrInvalidTransition, e.Subject, e.From, e.To, e.Action)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
