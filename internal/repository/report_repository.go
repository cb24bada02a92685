package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/student-records-backend/internal/model"
)

// ReportRepository runs the weighted-grade aggregation.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// GroupSemesterReport returns one row per (student, course offering) pair for
// the named group and semester, with SUM(points * weight) across assessment
// components. Enrollments and grades are LEFT JOINed so a student who has not
// been graded yet still appears, with a NULL weighted sum. An unknown group
// name yields an empty result, indistinguishable from a group with no
// offerings that semester.
//
// The (last_name, first_name, course_code) ordering is a public contract;
// report consumers rely on stable row positions.
func (r *ReportRepository) GroupSemesterReport(ctx context.Context, groupName string, year int, term model.Term) ([]model.ReportRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT
		   g.name AS group_name,
		   s.id AS student_id,
		   s.last_name,
		   s.first_name,
		   c.code AS course_code,
		   c.name AS course_name,
		   SUM(gr.points * ac.weight) AS weighted_points
		 FROM academic_group g
		 JOIN student s ON s.group_id = g.id
		 JOIN course_offering o ON o.group_id = g.id
		 JOIN semester sem ON sem.id = o.semester_id
		 JOIN course c ON c.id = o.course_id
		 LEFT JOIN enrollment e ON e.offering_id = o.id AND e.student_id = s.id
		 LEFT JOIN grade gr ON gr.enrollment_id = e.id
		 LEFT JOIN assessment_component ac ON ac.id = gr.component_id
		 WHERE g.name = $1 AND sem.year = $2 AND sem.term = $3
		 GROUP BY g.name, s.id, s.last_name, s.first_name, c.code, c.name
		 ORDER BY s.last_name, s.first_name, c.code`,
		groupName, year, term,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := []model.ReportRow{}
	for rows.Next() {
		var row model.ReportRow
		if err := rows.Scan(&row.GroupName, &row.StudentID, &row.LastName, &row.FirstName,
			&row.CourseCode, &row.CourseName, &row.WeightedPoints); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}
