package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campushq/student-records-backend/internal/database"
	"github.com/campushq/student-records-backend/internal/response"
)

// SystemHandler handles operational endpoints.
type SystemHandler struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(pool *pgxpool.Pool, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{pool: pool, log: log}
}

// Health godoc
// GET /health
// Runs the database liveness probe inline. The result is never cached: a
// 200 here means the probe succeeded on this very request.
func (h *SystemHandler) Health(c *gin.Context) {
	if err := database.Probe(c.Request.Context(), h.pool); err != nil {
		h.log.Error().Err(err).Msg("health probe failed")
		response.Fail(c, http.StatusServiceUnavailable, response.ErrUnavailable)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}
