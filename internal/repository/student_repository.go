package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/student-records-backend/internal/model"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// Create inserts a new student and its audit entry in one transaction.
// Returns ErrConflict when the email is already registered and
// ErrInvalidReference when group_id does not resolve.
func (r *StudentRepository) Create(ctx context.Context, groupID int, firstName, lastName, email string, enrollmentYear int, status model.StudentStatus) (*model.Student, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	s := &model.Student{}
	err = tx.QueryRow(ctx,
		`INSERT INTO student (group_id, first_name, last_name, email, enrollment_year, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, first_name, last_name, email`,
		groupID, firstName, lastName, email, enrollmentYear, status,
	).Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email)
	if err != nil {
		return nil, translateConstraint(err)
	}

	if err := insertAudit(ctx, tx, "create", "student", s.ID, map[string]any{"email": s.Email}); err != nil {
		return nil, translateConstraint(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves all students with their group name, ordered by last name
// then first name.
func (r *StudentRepository) List(ctx context.Context) ([]model.StudentWithGroup, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.id, s.first_name, s.last_name, s.email, s.enrollment_year, s.status,
		        g.name AS group_name
		 FROM student s
		 JOIN academic_group g ON g.id = s.group_id
		 ORDER BY s.last_name, s.first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []model.StudentWithGroup{}
	for rows.Next() {
		var s model.StudentWithGroup
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.EnrollmentYear, &s.Status, &s.GroupName); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
