package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/student-records-backend/internal/model"
)

type stubGradeRepo struct {
	upsertCalls int
	lastPoints  float64
}

func (r *stubGradeRepo) Upsert(_ context.Context, enrollmentID, componentID int, points float64) (*model.Grade, error) {
	r.upsertCalls++
	r.lastPoints = points
	return &model.Grade{
		ID:           1,
		EnrollmentID: enrollmentID,
		ComponentID:  componentID,
		Points:       points,
		GradedAt:     time.Now(),
	}, nil
}

func ptr(f float64) *float64 { return &f }

func TestGradeUpsertRejectsNegativePointsBeforePersistence(t *testing.T) {
	repo := &stubGradeRepo{}
	svc := NewGradeService(repo)

	_, err := svc.Upsert(context.Background(), &model.UpsertGradeRequest{
		EnrollmentID: 1,
		ComponentID:  2,
		Points:       ptr(-0.5),
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, repo.upsertCalls)
}

func TestGradeUpsertRejectsMissingPoints(t *testing.T) {
	repo := &stubGradeRepo{}
	svc := NewGradeService(repo)

	_, err := svc.Upsert(context.Background(), &model.UpsertGradeRequest{EnrollmentID: 1, ComponentID: 2})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, repo.upsertCalls)
}

func TestGradeUpsertAllowsZeroPoints(t *testing.T) {
	repo := &stubGradeRepo{}
	svc := NewGradeService(repo)

	g, err := svc.Upsert(context.Background(), &model.UpsertGradeRequest{
		EnrollmentID: 1,
		ComponentID:  2,
		Points:       ptr(0),
	})

	require.NoError(t, err)
	assert.Zero(t, g.Points)
	assert.Equal(t, 1, repo.upsertCalls)
}
