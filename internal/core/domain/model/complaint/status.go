package complaint

import (
	"fmt"

	"packflow/internal/pkg/errs"
)

// Status is the lifecycle of a complaint. Open is the only starting state and
// Resolved is final.
type Status int

const (
	UnknownStatus Status = iota
	Open
	Resolved
)

var statusCodes = map[Status]string{
	Open:     "open",
	Resolved: "resolved",
}

// ParseStatus maps "open" or "resolved" to a Status.
func ParseStatus(code string) (Status, error) {
	for s, c := range statusCodes {
		if c == code {
			return s, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a complaint status", code))
}

func (s Status) String() string {
	if c, ok := statusCodes[s]; ok {
		return c
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := statusCodes[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid complaint status", s))
	}
	return nil
}

// FilterAll lists complaints of every status.
const FilterAll = "all"

// FilterKeys are the complaint board keys in display order.
func FilterKeys() []string {
	return []string{Open.String(), Resolved.String(), FilterAll}
}

// Statuses resolves a filter key to the statuses it shows. An empty key means
// "all".
func Statuses(key string) ([]Status, error) {
	switch key {
	case "", FilterAll:
		return []Status{Open, Resolved}, nil
	}
	s, err := ParseStatus(key)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("filter", err)
	}
	return []Status{s}, nil
}
