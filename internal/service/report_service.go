package service

import (
	"context"
	"fmt"

	"github.com/campushq/student-records-backend/internal/model"
)

// ReportRepository provides the aggregation query the report service needs.
type ReportRepository interface {
	GroupSemesterReport(ctx context.Context, groupName string, year int, term model.Term) ([]model.ReportRow, error)
}

// ReportService handles the weighted-grade report. Report results are never
// cached; every call reflects the current state of grades.
type ReportService struct {
	reportRepo ReportRepository
}

// NewReportService creates a new ReportService.
func NewReportService(reportRepo ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// GroupSemester builds the weighted-grade report for a group and semester.
// An unrecognized term is rejected before any storage access; an unknown
// group name is not an error and yields an empty report.
func (s *ReportService) GroupSemester(ctx context.Context, groupName string, year int, term model.Term) ([]model.ReportRow, error) {
	if !term.IsValid() {
		return nil, fmt.Errorf("%w: term must be %q or %q", ErrValidation, model.TermSpring, model.TermFall)
	}
	return s.reportRepo.GroupSemesterReport(ctx, groupName, year, term)
}
