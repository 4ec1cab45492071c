package access

import (
	"fmt"

	"packflow/internal/pkg/errs"
)

// Section is a permission scope of the portal.
type Section int

const (
	// UnknownSection catches uninitialized values.
	UnknownSection Section = iota
	CreateOrder
	NewOrders
	SectionA
	SectionB
	SectionC
	Packaging
	Dispatched
	Complaints
)

var sectionCodes = map[Section]string{
	CreateOrder: "createOrder",
	NewOrders:   "newOrders",
	SectionA:    "sa",
	SectionB:    "sb",
	SectionC:    "sc",
	Packaging:   "packaging",
	Dispatched:  "dispatched",
	Complaints:  "complaints",
}

// Sections returns every valid section in display order.
func Sections() []Section {
	return []Section{CreateOrder, NewOrders, SectionA, SectionB, SectionC, Packaging, Dispatched, Complaints}
}

// ParseSection maps a wire code such as "sb" to its Section.
func ParseSection(code string) (Section, error) {
	for s, c := range sectionCodes {
		if c == code {
			return s, nil
		}
	}
	return UnknownSection, errs.NewValueIsInvalidErrorWithCause(
		"section", fmt.Errorf("%q is not a known section", code))
}

// String returns the wire code, or "unknown".
func (s Section) String() string {
	if c, ok := sectionCodes[s]; ok {
		return c
	}
	return "unknown"
}

// Validate rejects UnknownSection and out-of-range values.
func (s Section) Validate() error {
	if _, ok := sectionCodes[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("section", fmt.Errorf("%d is not a valid section", s))
	}
	return nil
}

// IsBoard reports whether the section is one of the six order boards a complaint
// can be raised from.
func (s Section) IsBoard() bool {
	switch s {
	case NewOrders, SectionA, SectionB, SectionC, Packaging, Dispatched:
		return true
	case UnknownSection, CreateOrder, Complaints:
		return false
	}
	return false
}
