// Package pgerr maps postgres error codes raised through GORM to domain errors.
package pgerr

import (
	"errors"

	"packflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the adapters react to.
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
	CheckViolation      = "23514"
	SerializationFailed = "40001"
)

// Code returns the SQLSTATE of err, or "" when err does not come from postgres.
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// Translate rewrites constraint failures on subject/id into domain errors and
// returns every other error unchanged.
//
//   - unique violation and serialization failure -> ConflictError
//   - foreign key violation -> ObjectNotFoundError on the referenced row
//   - check violation -> ValueIsInvalidError
func Translate(err error, subject string, id any) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case UniqueViolation, SerializationFailed:
		return errs.NewConflictError(subject, id)
	case ForeignKeyViolation:
		return errs.NewObjectNotFoundErrorWithCause(pgErr.ConstraintName, id, err)
	case CheckViolation:
		return errs.NewValueIsInvalidErrorWithCause(subject, err)
	}
	return err
}
