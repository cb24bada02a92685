package service

import (
	"context"

	"github.com/campushq/student-records-backend/internal/model"
)

// EnrollmentRepository provides the persistence operation the enrollment
// service needs.
type EnrollmentRepository interface {
	Enroll(ctx context.Context, studentID, offeringID int) (*model.Enrollment, error)
}

// EnrollmentService handles enrollment business logic.
type EnrollmentService struct {
	enrollmentRepo EnrollmentRepository
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(enrollmentRepo EnrollmentRepository) *EnrollmentService {
	return &EnrollmentService{enrollmentRepo: enrollmentRepo}
}

// Enroll links a student to a course offering.
func (s *EnrollmentService) Enroll(ctx context.Context, req *model.EnrollRequest) (*model.Enrollment, error) {
	return s.enrollmentRepo.Enroll(ctx, req.StudentID, req.OfferingID)
}
