package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/student-records-backend/internal/model"
	"github.com/campushq/student-records-backend/internal/response"
	"github.com/campushq/student-records-backend/internal/service"
	"github.com/campushq/student-records-backend/internal/validator"
)

// GradeHandler handles grade endpoints.
type GradeHandler struct {
	gradeService *service.GradeService
}

// NewGradeHandler creates a new GradeHandler.
func NewGradeHandler(gradeService *service.GradeService) *GradeHandler {
	return &GradeHandler{gradeService: gradeService}
}

// UpsertGrade godoc
// POST /grade
// Records a grade, overwriting any previous one for the same
// (enrollment, component) pair.
func (h *GradeHandler) UpsertGrade(c *gin.Context) {
	var req model.UpsertGradeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	grade, err := h.gradeService.Upsert(c.Request.Context(), &req)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"grade": grade})
}
