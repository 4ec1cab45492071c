package access

import (
	"fmt"

	"packflow/internal/pkg/errs"
)

// Level is the permission an account holds on one Section. The zero value is NoAccess.
type Level int

const (
	NoAccess Level = iota
	ReadOnly
	ReadWrite
)

var levelCodes = map[Level]string{
	NoAccess:  "no_access",
	ReadOnly:  "read_only",
	ReadWrite: "read_write",
}

// ParseLevel maps "no_access", "read_only" or "read_write" to a Level.
func ParseLevel(code string) (Level, error) {
	for l, c := range levelCodes {
		if c == code {
			return l, nil
		}
	}
	return NoAccess, errs.NewValueIsInvalidErrorWithCause(
		"permission", fmt.Errorf("%q is not a known permission level", code))
}

func (l Level) String() string {
	if c, ok := levelCodes[l]; ok {
		return c
	}
	return "unknown"
}

// Validate rejects out-of-range values.
func (l Level) Validate() error {
	if _, ok := levelCodes[l]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("permission", fmt.Errorf("%d is not a valid level", l))
	}
	return nil
}

// Allows reports whether l satisfies required.
func (l Level) Allows(required Level) bool {
	return l >= required
}
