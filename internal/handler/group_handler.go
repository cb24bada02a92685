package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/student-records-backend/internal/model"
	"github.com/campushq/student-records-backend/internal/response"
	"github.com/campushq/student-records-backend/internal/service"
	"github.com/campushq/student-records-backend/internal/validator"
)

// GroupHandler handles academic group endpoints.
type GroupHandler struct {
	groupService *service.GroupService
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// ListGroups godoc
// GET /groups
// Lists all groups with program and department names, ordered by name.
func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.groupService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"groups": groups})
}

// CreateGroup godoc
// POST /groups
// Creates a new academic group.
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req model.CreateGroupRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	group, err := h.groupService.Create(c.Request.Context(), &req)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"group": group})
}
