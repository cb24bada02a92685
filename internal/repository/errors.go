package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrConflict is returned when an insert would violate a uniqueness
	// invariant (duplicate group name, student email, or enrollment pair).
	ErrConflict = errors.New("uniqueness constraint violated")

	// ErrInvalidReference is returned when a referenced entity id does not
	// resolve to an existing row.
	ErrInvalidReference = errors.New("referenced entity does not exist")
)

// translateConstraint classifies a storage error by constraint category at the
// repository boundary: unique violations become ErrConflict, foreign key
// violations become ErrInvalidReference. Anything else passes through
// unchanged for the caller to treat as an unknown storage failure.
// Constraint violations are never retried here; the caller decides.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w (%s)", ErrConflict, pgErr.ConstraintName)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w (%s)", ErrInvalidReference, pgErr.ConstraintName)
		}
	}
	return err
}
