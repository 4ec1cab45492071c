package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"packflow/internal/adapters/out/postgres/pgerr"
	"packflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	t.Run("should map unique violations to conflict", func(t *testing.T) {
		err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerr.UniqueViolation})

		assert.ErrorIs(t, pgerr.Translate(err, "order", "42"), errs.ErrConflict)
		assert.Equal(t, pgerr.UniqueViolation, pgerr.Code(err))
	})

	t.Run("should map foreign key violations to not found", func(t *testing.T) {
		err := &pgconn.PgError{Code: pgerr.ForeignKeyViolation, ConstraintName: "fk_complaints_order"}

		translated := pgerr.Translate(err, "complaint", "7")

		assert.ErrorIs(t, translated, errs.ErrObjectNotFound)
		assert.Contains(t, translated.Error(), "fk_complaints_order")
	})

	t.Run("should pass other errors through", func(t *testing.T) {
		plain := errors.New("connection reset")

		assert.Same(t, plain, pgerr.Translate(plain, "order", "1"))
		assert.Empty(t, pgerr.Code(plain))
	})
}
