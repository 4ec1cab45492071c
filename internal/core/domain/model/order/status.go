package order

import (
	"fmt"

	"packflow/internal/pkg/errs"
)

// Status represents the workflow state of an order. It is the single source of
// workflow truth; every board and permission check derives from it.
//
// Pipeline:
//
//	NEW ──review──> SA_PENDING ──sa──> SB_PENDING ──sb──> SC_PENDING ──sc──> PACKAGING_PENDING ──packaging──> DISPATCH_YET
//	 │                 │                  │                  │                      │                            │
//	 └─> REJECTED      └─> SA_FAILED      └─> SB_FAILED      └─> SC_FAILED          └─> PACKAGING_FAILED           ├─> DISPATCH_REACHED
//	                                                                                                              ├─> DISPATCH_FAILED
//	                                                                                                              └─> DISPATCH_COULD_NOT
//
// ACCEPTED and the *_DONE members are reserved: they are valid values but no
// transition produces or consumes them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	New
	Accepted
	Rejected

	SAPending
	SADone
	SAFailed

	SBPending
	SBDone
	SBFailed

	SCPending
	SCDone
	SCFailed

	PackagingPending
	PackagingDone
	PackagingFailed

	DispatchYet
	DispatchReached
	DispatchFailed
	DispatchCouldNot
)

// phase is the ordered pipeline position of a status. "At or past stage X" is a
// numeric comparison on phase.
type phase int

const (
	phaseNone phase = iota
	phaseIntake
	phaseReview
	phaseSectionA
	phaseSectionB
	phaseSectionC
	phasePackaging
	phaseDispatch
)

// kind classifies a status inside its phase.
type kind int

const (
	kindNone kind = iota
	kindOpen
	kindAccepted
	kindRejected
	kindPending
	kindDone
	kindFailed
	kindAwaiting
	kindDelivered
	kindUndeliverable
)

type statusInfo struct {
	code  string
	phase phase
	kind  kind
}

var statusTable = map[Status]statusInfo{
	New:              {"NEW", phaseIntake, kindOpen},
	Accepted:         {"ACCEPTED", phaseReview, kindAccepted},
	Rejected:         {"REJECTED", phaseReview, kindRejected},
	SAPending:        {"SA_PENDING", phaseSectionA, kindPending},
	SADone:           {"SA_DONE", phaseSectionA, kindDone},
	SAFailed:         {"SA_FAILED", phaseSectionA, kindFailed},
	SBPending:        {"SB_PENDING", phaseSectionB, kindPending},
	SBDone:           {"SB_DONE", phaseSectionB, kindDone},
	SBFailed:         {"SB_FAILED", phaseSectionB, kindFailed},
	SCPending:        {"SC_PENDING", phaseSectionC, kindPending},
	SCDone:           {"SC_DONE", phaseSectionC, kindDone},
	SCFailed:         {"SC_FAILED", phaseSectionC, kindFailed},
	PackagingPending: {"PACKAGING_PENDING", phasePackaging, kindPending},
	PackagingDone:    {"PACKAGING_DONE", phasePackaging, kindDone},
	PackagingFailed:  {"PACKAGING_FAILED", phasePackaging, kindFailed},
	DispatchYet:      {"DISPATCH_YET", phaseDispatch, kindAwaiting},
	DispatchReached:  {"DISPATCH_REACHED", phaseDispatch, kindDelivered},
	DispatchFailed:   {"DISPATCH_FAILED", phaseDispatch, kindFailed},
	DispatchCouldNot: {"DISPATCH_COULD_NOT", phaseDispatch, kindUndeliverable},
}

// Statuses returns every valid status in pipeline order.
func Statuses() []Status {
	out := make([]Status, 0, len(statusTable))
	for s := New; s <= DispatchCouldNot; s++ {
		out = append(out, s)
	}
	return out
}

// ParseStatus maps a wire code such as "SB_PENDING" to its Status.
//
// Returns:
//   - the Status for a known code
//   - a ValueIsInvalidError for anything else, including "Unknown"
func ParseStatus(code string) (Status, error) {
	for s, info := range statusTable {
		if info.code == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", code))
}

// Validate checks if the Status value is one of the enumerated members.
func (s Status) Validate() error {
	if _, ok := statusTable[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire code ("SB_PENDING") or "Unknown" for invalid values.
func (s Status) String() string {
	if info, ok := statusTable[s]; ok {
		return info.code
	}
	return "Unknown"
}

// isTerminal reports whether no engine-defined transition leaves s.
// Reserved statuses are terminal too, since nothing consumes them.
func (s Status) isTerminal() bool {
	if s.Validate() != nil {
		return false
	}
	_, hasRule := transitions[s]
	return !hasRule
}

// isReserved reports whether s is a declared but unused member.
func (s Status) isReserved() bool {
	switch statusTable[s].kind {
	case kindAccepted, kindDone:
		return true
	case kindNone, kindOpen, kindRejected, kindPending, kindFailed, kindAwaiting, kindDelivered, kindUndeliverable:
		return false
	}
	return false
}

func (s Status) phase() phase {
	return statusTable[s].phase
}

func (s Status) kind() kind {
	return statusTable[s].kind
}
