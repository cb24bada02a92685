package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/student-records-backend/internal/model"
)

type stubReportRepo struct {
	calls int
	rows  []model.ReportRow
}

func (r *stubReportRepo) GroupSemesterReport(_ context.Context, _ string, _ int, _ model.Term) ([]model.ReportRow, error) {
	r.calls++
	return r.rows, nil
}

func TestReportRejectsUnknownTermBeforeQuerying(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo)

	_, err := svc.GroupSemester(context.Background(), "CS-101", 2024, "winter")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, repo.calls)
}

func TestReportPassesThroughEmptyResult(t *testing.T) {
	repo := &stubReportRepo{rows: []model.ReportRow{}}
	svc := NewReportService(repo)

	rows, err := svc.GroupSemester(context.Background(), "no-such-group", 2024, model.TermFall)

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows, "unknown group is an empty report, not an error")
	assert.Equal(t, 1, repo.calls)
}
