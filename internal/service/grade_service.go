package service

import (
	"context"
	"fmt"

	"github.com/campushq/student-records-backend/internal/model"
)

// GradeRepository provides the persistence operation the grade service needs.
type GradeRepository interface {
	Upsert(ctx context.Context, enrollmentID, componentID int, points float64) (*model.Grade, error)
}

// GradeService handles grade business logic.
type GradeService struct {
	gradeRepo GradeRepository
}

// NewGradeService creates a new GradeService.
func NewGradeService(gradeRepo GradeRepository) *GradeService {
	return &GradeService{gradeRepo: gradeRepo}
}

// Upsert records or overwrites a grade. Negative points are rejected before
// any storage access.
func (s *GradeService) Upsert(ctx context.Context, req *model.UpsertGradeRequest) (*model.Grade, error) {
	if req.Points == nil || *req.Points < 0 {
		return nil, fmt.Errorf("%w: points must be >= 0", ErrValidation)
	}
	return s.gradeRepo.Upsert(ctx, req.EnrollmentID, req.ComponentID, *req.Points)
}
