package order

import (
	"fmt"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/pkg/errs"
)

// Stage is a stop in the pipeline where a staff member acts on an order.
// Each stage owns one audit stamp on the order.
type Stage int

const (
	UnknownStage Stage = iota
	Review
	StageA
	StageB
	StageC
	StagePackaging
	StageDispatch
)

type stageInfo struct {
	code  string
	gate  access.Section
	phase phase
}

var stageTable = map[Stage]stageInfo{
	Review:         {"review", access.NewOrders, phaseReview},
	StageA:         {"sa", access.SectionA, phaseSectionA},
	StageB:         {"sb", access.SectionB, phaseSectionB},
	StageC:         {"sc", access.SectionC, phaseSectionC},
	StagePackaging: {"packaging", access.Packaging, phasePackaging},
	StageDispatch:  {"dispatch", access.Dispatched, phaseDispatch},
}

// Stages returns every stage in pipeline order.
func Stages() []Stage {
	return []Stage{Review, StageA, StageB, StageC, StagePackaging, StageDispatch}
}

// ParseStage maps a wire tag ("review", "sa", ..., "dispatch") to its Stage.
func ParseStage(code string) (Stage, error) {
	for s, info := range stageTable {
		if info.code == code {
			return s, nil
		}
	}
	return UnknownStage, errs.NewValueIsInvalidErrorWithCause("section", fmt.Errorf("%q is not a known stage", code))
}

func (s Stage) String() string {
	if info, ok := stageTable[s]; ok {
		return info.code
	}
	return "unknown"
}

// Validate rejects UnknownStage and out-of-range values.
func (s Stage) Validate() error {
	if _, ok := stageTable[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// Gate is the permission section whose read_write level authorizes acting at s.
// The review stage is gated by the new-orders board, dispatch by the dispatched board.
func (s Stage) Gate() access.Section {
	return stageTable[s].gate
}
