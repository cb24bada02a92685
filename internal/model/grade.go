package model

import "time"

// Grade holds the points a student earned for one assessment component.
// A grade is the only mutable entity in the system: re-submitting the same
// (enrollment, component) pair overwrites points and refreshes graded_at.
type Grade struct {
	ID           int       `json:"id"`
	EnrollmentID int       `json:"enrollment_id"`
	ComponentID  int       `json:"component_id"`
	Points       float64   `json:"points"`
	GradedAt     time.Time `json:"graded_at"`
}

// UpsertGradeRequest is the payload for recording or overwriting a grade.
// Points is a pointer so that an explicit 0 is distinguishable from an absent
// field.
type UpsertGradeRequest struct {
	EnrollmentID int      `json:"enrollment_id" binding:"required,min=1"`
	ComponentID  int      `json:"component_id" binding:"required,min=1"`
	Points       *float64 `json:"points" binding:"required"`
}
