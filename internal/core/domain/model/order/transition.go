package order

import (
	"slices"

	"packflow/internal/pkg/errs"
)

type rule struct {
	stage   Stage
	targets []Status
}

// transitions is the complete legal move set: from a status, only the listed
// stage may act, and only toward the listed targets. Statuses absent from the
// table are terminal.
var transitions = map[Status]rule{
	New:              {Review, []Status{SAPending, Rejected}},
	SAPending:        {StageA, []Status{SBPending, SAFailed}},
	SBPending:        {StageB, []Status{SCPending, SBFailed}},
	SCPending:        {StageC, []Status{PackagingPending, SCFailed}},
	PackagingPending: {StagePackaging, []Status{DispatchYet, PackagingFailed}},
	DispatchYet:      {StageDispatch, []Status{DispatchReached, DispatchFailed, DispatchCouldNot}},
}

// NextStatuses returns the targets stage may move s to. It is empty when the
// stage does not act on s.
func (s Status) NextStatuses(stage Stage) []Status {
	r, ok := transitions[s]
	if !ok || r.stage != stage {
		return nil
	}
	return slices.Clone(r.targets)
}

// actingStage returns the stage that may act on s, or UnknownStage for terminal statuses.
func (s Status) actingStage() Stage {
	return transitions[s].stage
}

func (s Status) rejectionReason(stage Stage, target Status) string {
	acting := s.actingStage()
	switch {
	case s.isTerminal():
		return s.String() + " is final"
	case acting == UnknownStage:
		return s.String() + " is not a workflow status"
	case acting != stage:
		return "only " + acting.String() + " acts on " + s.String()
	case target.isReserved():
		return target.String() + " is reserved"
	default:
		return "target is not offered by " + stage.String()
	}
}

// CanAdvance reports whether stage may move s to target.
func (s Status) CanAdvance(stage Stage, target Status) bool {
	return slices.Contains(s.NextStatuses(stage), target)
}

// Advance transitions the status to target through stage.
//
// Returns:
//   - (target, nil) when the move is in the transition table
//   - (Unknown, InvalidTransitionError) otherwise, including moves out of terminal statuses
//
// Example:
//
//	next, err := order.New.Advance(order.Review, order.SAPending) // SA_PENDING, nil
//	_, err = order.New.Advance(order.StageDispatch, order.DispatchReached) // InvalidTransitionError
func (s Status) Advance(stage Stage, target Status) (Status, error) {
	if err := stage.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanAdvance(stage, target) {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), target.String(), stage.String()).
			WithReason(s.rejectionReason(stage, target))
	}
	return target, nil
}
