package model

// StudentStatus represents a student's standing within their group.
type StudentStatus string

const (
	StatusActive        StudentStatus = "active"
	StatusAcademicLeave StudentStatus = "academic_leave"
	StatusGraduated     StudentStatus = "graduated"
	StatusExpelled      StudentStatus = "expelled"
)

// IsValid reports whether the status is one of the recognized values.
func (s StudentStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusAcademicLeave, StatusGraduated, StatusExpelled:
		return true
	}
	return false
}

// Student represents a student record as returned by the write path.
type Student struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// StudentWithGroup is the denormalized listing row for a student.
type StudentWithGroup struct {
	ID             int           `json:"id"`
	FirstName      string        `json:"first_name"`
	LastName       string        `json:"last_name"`
	Email          string        `json:"email"`
	EnrollmentYear int           `json:"enrollment_year"`
	Status         StudentStatus `json:"status"`
	GroupName      string        `json:"group_name"`
}

// CreateStudentRequest is the payload for creating a student.
// Status membership is checked in the service layer, before any storage
// access, so the error surfaces as a domain validation failure rather than a
// binding failure.
type CreateStudentRequest struct {
	GroupID        int           `json:"group_id" binding:"required,min=1"`
	FirstName      string        `json:"first_name" binding:"required,min=1,max=100"`
	LastName       string        `json:"last_name" binding:"required,min=1,max=100"`
	Email          string        `json:"email" binding:"required,min=5,max=200"`
	EnrollmentYear int           `json:"enrollment_year" binding:"required,min=1990,max=2100"`
	Status         StudentStatus `json:"status"`
}
