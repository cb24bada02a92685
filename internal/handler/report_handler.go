package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushq/student-records-backend/internal/model"
	"github.com/campushq/student-records-backend/internal/response"
	"github.com/campushq/student-records-backend/internal/service"
)

// ReportHandler handles the weighted-grade report endpoint.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GroupSemesterReport godoc
// GET /report/group/:group_name/semester/:year/:term
// Returns the weighted-grade report for a group in a semester.
func (h *ReportHandler) GroupSemesterReport(c *gin.Context) {
	groupName := c.Param("group_name")

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return
	}

	term := model.Term(c.Param("term"))

	report, err := h.reportService.GroupSemester(c.Request.Context(), groupName, year, term)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"report": report})
}
