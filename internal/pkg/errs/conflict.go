package errs

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel for compare-and-set updates that lost a race.
var ErrConflict = errors.New("concurrent modification")

// ConflictError names the object another writer changed first.
type ConflictError struct {
	ParamName string
	ID        any
}

// NewConflictError creates a ConflictError.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s was changed by another request", ErrConflict, e.ParamName, sanitize(e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
