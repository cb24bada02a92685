package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/student-records-backend/internal/model"
	"github.com/campushq/student-records-backend/internal/service"
)

type fakeReportRepo struct {
	rows  []model.ReportRow
	calls int
}

func (r *fakeReportRepo) GroupSemesterReport(_ context.Context, _ string, _ int, _ model.Term) ([]model.ReportRow, error) {
	r.calls++
	return r.rows, nil
}

func newReportRouter(repo *fakeReportRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReportHandler(service.NewReportService(repo))
	r := gin.New()
	r.GET("/report/group/:group_name/semester/:year/:term", h.GroupSemesterReport)
	return r
}

func getPath(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestReportRejectsInvalidTerm(t *testing.T) {
	repo := &fakeReportRepo{}
	r := newReportRouter(repo)

	w := getPath(r, "/report/group/CS-101/semester/2024/winter")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, repo.calls)
}

func TestReportRejectsNonNumericYear(t *testing.T) {
	repo := &fakeReportRepo{}
	r := newReportRouter(repo)

	w := getPath(r, "/report/group/CS-101/semester/twenty/fall")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, repo.calls)
}

func TestReportReturnsRowsWithNullWeightedPoints(t *testing.T) {
	repo := &fakeReportRepo{rows: []model.ReportRow{
		{GroupName: "CS-101", StudentID: 1, LastName: "Ivanov", FirstName: "Petr", CourseCode: "MATH1", CourseName: "Calculus"},
	}}
	r := newReportRouter(repo)

	w := getPath(r, "/report/group/CS-101/semester/2024/fall")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"weighted_points":null`)
}
