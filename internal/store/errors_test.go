package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, mapError(nil))
	})

	t.Run("no rows is not found", func(t *testing.T) {
		err := mapError(fmt.Errorf("scan: %w", pgx.ErrNoRows))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unique violation is conflict", func(t *testing.T) {
		err := mapError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})
		assert.ErrorIs(t, err, ErrConflict)
		assert.Contains(t, err.Error(), "users_email_key")
	})

	t.Run("foreign key violation is invalid reference", func(t *testing.T) {
		err := mapError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "users_company_id_fkey"})
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("other postgres errors pass through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.QueryCanceled}
		err := mapError(pgErr)
		assert.Same(t, pgErr, err)
	})

	t.Run("plain errors pass through", func(t *testing.T) {
		orig := errors.New("connection reset")
		assert.Equal(t, orig, mapError(orig))
	})
}
