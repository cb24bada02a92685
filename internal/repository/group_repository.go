package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/student-records-backend/internal/model"
)

// GroupRepository handles academic group data access.
type GroupRepository struct {
	pool *pgxpool.Pool
}

// NewGroupRepository creates a new GroupRepository.
func NewGroupRepository(pool *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{pool: pool}
}

// Create inserts a new group and its audit entry in one transaction.
// Returns ErrConflict when the group name is taken and ErrInvalidReference
// when program_id or curator_instructor_id does not resolve.
func (r *GroupRepository) Create(ctx context.Context, programID int, name string, yearStart int, curatorID *int) (*model.Group, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	g := &model.Group{}
	err = tx.QueryRow(ctx,
		`INSERT INTO academic_group (program_id, name, year_start, curator_instructor_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, year_start`,
		programID, name, yearStart, curatorID,
	).Scan(&g.ID, &g.Name, &g.YearStart)
	if err != nil {
		return nil, translateConstraint(err)
	}

	if err := insertAudit(ctx, tx, "create", "academic_group", g.ID, map[string]any{"name": g.Name}); err != nil {
		return nil, translateConstraint(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return g, nil
}

// List retrieves all groups with their program and department names, ordered
// by group name.
func (r *GroupRepository) List(ctx context.Context) ([]model.GroupWithProgram, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT g.id, g.name, g.year_start,
		        p.name AS program_name, p.degree_level,
		        d.name AS department_name
		 FROM academic_group g
		 JOIN program p ON p.id = g.program_id
		 JOIN department d ON d.id = p.department_id
		 ORDER BY g.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []model.GroupWithProgram{}
	for rows.Next() {
		var g model.GroupWithProgram
		if err := rows.Scan(&g.ID, &g.Name, &g.YearStart, &g.ProgramName, &g.DegreeLevel, &g.DepartmentName); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
