package model

// ReportRow is one line of the weighted-grade report: a (student, course)
// pair for the requested group and semester. WeightedPoints is nil when the
// student has no recorded grade yet; enrolled-but-ungraded students still
// appear in the report.
type ReportRow struct {
	GroupName      string   `json:"group_name"`
	StudentID      int      `json:"student_id"`
	LastName       string   `json:"last_name"`
	FirstName      string   `json:"first_name"`
	CourseCode     string   `json:"course_code"`
	CourseName     string   `json:"course_name"`
	WeightedPoints *float64 `json:"weighted_points"`
}
