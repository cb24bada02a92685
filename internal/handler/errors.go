package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/student-records-backend/internal/repository"
	"github.com/campushq/student-records-backend/internal/response"
	"github.com/campushq/student-records-backend/internal/service"
)

// failFromError maps domain error kinds to HTTP status codes. Uniqueness
// conflicts become 409, unresolved references and local validation failures
// become 400, exhausted request deadlines become 503, anything else is an
// opaque 500.
func failFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
	case errors.Is(err, repository.ErrConflict):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	case errors.Is(err, repository.ErrInvalidReference):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidReference)
	case errors.Is(err, context.DeadlineExceeded):
		response.Fail(c, http.StatusServiceUnavailable, response.ErrUnavailable)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
