package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/student-records-backend/internal/model"
)

// GradeRepository handles grade data access.
type GradeRepository struct {
	pool *pgxpool.Pool
}

// NewGradeRepository creates a new GradeRepository.
func NewGradeRepository(pool *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{pool: pool}
}

// Upsert records a grade for an (enrollment, component) pair, or overwrites
// the existing one. Duplicate submissions are not a conflict: the unique key
// routes them into the DO UPDATE branch, which replaces points and refreshes
// graded_at. Concurrent writers on the same pair serialize on the row lock
// and the last commit wins; there is deliberately no version token.
//
// The audit entry is written in the same transaction with action "upsert".
// Returns ErrInvalidReference when either id does not resolve.
func (r *GradeRepository) Upsert(ctx context.Context, enrollmentID, componentID int, points float64) (*model.Grade, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	g := &model.Grade{}
	err = tx.QueryRow(ctx,
		`INSERT INTO grade (enrollment_id, component_id, points)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (enrollment_id, component_id)
		 DO UPDATE SET points = EXCLUDED.points, graded_at = NOW()
		 RETURNING id, enrollment_id, component_id, points, graded_at`,
		enrollmentID, componentID, points,
	).Scan(&g.ID, &g.EnrollmentID, &g.ComponentID, &g.Points, &g.GradedAt)
	if err != nil {
		return nil, translateConstraint(err)
	}

	details := map[string]any{
		"enrollment_id": g.EnrollmentID,
		"component_id":  g.ComponentID,
		"points":        g.Points,
	}
	if err := insertAudit(ctx, tx, "upsert", "grade", g.ID, details); err != nil {
		return nil, translateConstraint(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return g, nil
}
