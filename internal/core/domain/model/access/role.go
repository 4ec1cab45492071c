package access

import (
	"fmt"

	"packflow/internal/pkg/errs"
)

// Role is the account kind. Pending exists only while signup is in progress.
type Role int

const (
	UnknownRole Role = iota
	Admin
	Staff
	Pending
)

var roleCodes = map[Role]string{
	Admin:   "admin",
	Staff:   "staff",
	Pending: "pending",
}

// ParseRole maps "admin", "staff" or "pending" to a Role.
func ParseRole(code string) (Role, error) {
	for r, c := range roleCodes {
		if c == code {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", code))
}

func (r Role) String() string {
	if c, ok := roleCodes[r]; ok {
		return c
	}
	return "unknown"
}
