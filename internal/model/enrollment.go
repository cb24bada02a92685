package model

import "time"

// Enrollment links a student to a course offering.
type Enrollment struct {
	ID         int       `json:"id"`
	OfferingID int       `json:"offering_id"`
	StudentID  int       `json:"student_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// EnrollRequest is the payload for enrolling a student into an offering.
type EnrollRequest struct {
	StudentID  int `json:"student_id" binding:"required,min=1"`
	OfferingID int `json:"offering_id" binding:"required,min=1"`
}
