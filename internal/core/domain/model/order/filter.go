package order

import (
	"fmt"

	"packflow/internal/core/domain/model/access"
	"packflow/internal/pkg/errs"
)

// FilterAll is the key every board accepts; it is also used when no key is given.
const FilterAll = "all"

type predicate func(Status) bool

type boardSpec struct {
	keys  []string
	match map[string]predicate
}

// stageBoard builds the pending/done/failed/all view shared by the processing
// boards. "done" covers the reserved DONE member plus anything of a later
// phase; "all" covers the stage's own phase and later.
func stageBoard(p phase, pending, done, failed Status) boardSpec {
	return boardSpec{
		keys: []string{"pending", "done", "failed", FilterAll},
		match: map[string]predicate{
			"pending": func(s Status) bool { return s == pending },
			"done":    func(s Status) bool { return s == done || s.phase() > p },
			"failed":  func(s Status) bool { return s == failed },
			FilterAll: func(s Status) bool { return s.phase() >= p },
		},
	}
}

var boards = map[access.Section]boardSpec{
	access.NewOrders: {
		keys: []string{"new", "accepted", "rejected", FilterAll},
		match: map[string]predicate{
			"new": func(s Status) bool { return s == New },
			"accepted": func(s Status) bool {
				k := s.kind()
				return k == kindAccepted || k == kindPending || k == kindDone
			},
			"rejected": func(s Status) bool { return s == Rejected },
			FilterAll:  func(s Status) bool { return s.Validate() == nil },
		},
	},
	access.SectionA:  stageBoard(phaseSectionA, SAPending, SADone, SAFailed),
	access.SectionB:  stageBoard(phaseSectionB, SBPending, SBDone, SBFailed),
	access.SectionC:  stageBoard(phaseSectionC, SCPending, SCDone, SCFailed),
	access.Packaging: stageBoard(phasePackaging, PackagingPending, PackagingDone, PackagingFailed),
	access.Dispatched: {
		keys: []string{"yet", "reached", "failed", "could_not", FilterAll},
		match: map[string]predicate{
			"yet":       func(s Status) bool { return s == DispatchYet },
			"reached":   func(s Status) bool { return s == DispatchReached },
			"failed":    func(s Status) bool { return s == DispatchFailed },
			"could_not": func(s Status) bool { return s == DispatchCouldNot },
			FilterAll:   func(s Status) bool { return s.phase() == phaseDispatch },
		},
	},
}

// Filter is a status predicate for one board. The zero Filter matches every
// valid status, which is what listing without a board means.
type Filter struct {
	board access.Section
	key   string
	match predicate
}

// NewFilter resolves a board section and a coarse key to a status predicate.
//
// Keys per board:
//   - newOrders: new, accepted, rejected, all
//   - sa, sb, sc, packaging: pending, done, failed, all
//   - dispatched: yet, reached, failed, could_not, all
//
// An empty key means "all".
func NewFilter(board access.Section, key string) (Filter, error) {
	spec, ok := boards[board]
	if !ok {
		return Filter{}, errs.NewValueIsInvalidErrorWithCause("board", fmt.Errorf("%s is not an order board", board))
	}
	if key == "" {
		key = FilterAll
	}
	match, ok := spec.match[key]
	if !ok {
		return Filter{}, errs.NewValueIsInvalidErrorWithCause("filter", fmt.Errorf("%q is not a filter of board %s", key, board))
	}
	return Filter{board: board, key: key, match: match}, nil
}

// FilterKeys returns the keys a board accepts, in display order.
func FilterKeys(board access.Section) ([]string, error) {
	spec, ok := boards[board]
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("board", fmt.Errorf("%s is not an order board", board))
	}
	return append([]string(nil), spec.keys...), nil
}

// Board returns the board section, or UnknownSection for the zero Filter.
func (f Filter) Board() access.Section { return f.board }

// Key returns the filter key, or "" for the zero Filter.
func (f Filter) Key() string { return f.key }

// Matches reports whether s belongs to the filtered view.
func (f Filter) Matches(s Status) bool {
	if f.match == nil {
		return s.Validate() == nil
	}
	return f.match(s)
}

// Statuses enumerates the matching statuses, for pushing the filter into a query.
func (f Filter) Statuses() []Status {
	out := make([]Status, 0)
	for _, s := range Statuses() {
		if f.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// Priority orders rows inside the view: on the new-orders board NEW orders come
// first; otherwise every status ranks equally.
func (f Filter) Priority(s Status) int {
	if f.board == access.NewOrders && s == New {
		return 0
	}
	return 1
}

// Summarize folds per-status counts into counts per key of board. Keys
// overlap, so the values do not sum to the total.
func Summarize(board access.Section, counts map[Status]int) (map[string]int, error) {
	spec, ok := boards[board]
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("board", fmt.Errorf("%s is not an order board", board))
	}
	out := make(map[string]int, len(spec.keys))
	for _, key := range spec.keys {
		out[key] = 0
	}
	for s, n := range counts {
		for key, match := range spec.match {
			if match(s) {
				out[key] += n
			}
		}
	}
	return out, nil
}
