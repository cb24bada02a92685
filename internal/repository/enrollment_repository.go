package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/student-records-backend/internal/model"
)

// EnrollmentRepository handles enrollment data access.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

// Enroll links a student to a course offering and writes the audit entry in
// one transaction. enrolled_at is assigned by the database at insert time.
// Returns ErrConflict when the (offering, student) pair already exists and
// ErrInvalidReference when either id does not resolve.
func (r *EnrollmentRepository) Enroll(ctx context.Context, studentID, offeringID int) (*model.Enrollment, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	e := &model.Enrollment{}
	err = tx.QueryRow(ctx,
		`INSERT INTO enrollment (offering_id, student_id)
		 VALUES ($1, $2)
		 RETURNING id, offering_id, student_id, enrolled_at`,
		offeringID, studentID,
	).Scan(&e.ID, &e.OfferingID, &e.StudentID, &e.EnrolledAt)
	if err != nil {
		return nil, translateConstraint(err)
	}

	details := map[string]any{"student_id": e.StudentID, "offering_id": e.OfferingID}
	if err := insertAudit(ctx, tx, "create", "enrollment", e.ID, details); err != nil {
		return nil, translateConstraint(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return e, nil
}
