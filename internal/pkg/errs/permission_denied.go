package errs

import (
	"errors"
	"fmt"
)

// ErrPermissionDenied is the sentinel for actors lacking a section permission.
var ErrPermissionDenied = errors.New("permission denied")

// PermissionDeniedError names the section and the level the action requires.
type PermissionDeniedError struct {
	Section  string
	Required string
}

// NewPermissionDeniedError creates a PermissionDeniedError.
func NewPermissionDeniedError(section, required string) *PermissionDeniedError {
	return &PermissionDeniedError{Section: section, Required: required}
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("%s: %s on %s is required", ErrPermissionDenied, e.Required, e.Section)
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}
