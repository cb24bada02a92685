package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateConstraintUnique(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "academic_group_name_key"}

	err := translateConstraint(pgErr)

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "academic_group_name_key")
}

func TestTranslateConstraintForeignKey(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "enrollment_student_id_fkey"}

	err := translateConstraint(pgErr)

	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestTranslateConstraintWrapped(t *testing.T) {
	// Classification must survive fmt.Errorf wrapping on the way up.
	wrapped := fmt.Errorf("insert grade: %w", &pgconn.PgError{Code: "23505"})

	assert.ErrorIs(t, translateConstraint(wrapped), ErrConflict)
}

func TestTranslateConstraintPassthrough(t *testing.T) {
	plain := errors.New("connection reset")

	assert.Equal(t, plain, translateConstraint(plain))

	other := &pgconn.PgError{Code: "40001"} // serialization_failure
	assert.Equal(t, error(other), translateConstraint(other))
}
