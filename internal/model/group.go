package model

// Group represents an academic group (a cohort of students inside a program).
type Group struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	YearStart int    `json:"year_start"`
}

// GroupWithProgram is the denormalized listing row for a group.
type GroupWithProgram struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	YearStart      int    `json:"year_start"`
	ProgramName    string `json:"program_name"`
	DegreeLevel    string `json:"degree_level"`
	DepartmentName string `json:"department_name"`
}

// CreateGroupRequest is the payload for creating an academic group.
type CreateGroupRequest struct {
	ProgramID           int    `json:"program_id" binding:"required,min=1"`
	Name                string `json:"name" binding:"required,min=1,max=50"`
	YearStart           int    `json:"year_start" binding:"required,min=1990,max=2100"`
	CuratorInstructorID *int   `json:"curator_instructor_id" binding:"omitempty,min=1"`
}
