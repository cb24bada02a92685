package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campushq/student-records-backend/internal/config"
	"github.com/campushq/student-records-backend/internal/handler"
	"github.com/campushq/student-records-backend/internal/middleware"
	"github.com/campushq/student-records-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	System     *handler.SystemHandler
	Group      *handler.GroupHandler
	Student    *handler.StudentHandler
	Enrollment *handler.EnrollmentHandler
	Grade      *handler.GradeHandler
	Report     *handler.ReportHandler
}

// SetupRouter configures all Gin routes with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Every request carries a deadline; storage calls inherit it.
	router.Use(middleware.Timeout(cfg.RequestTimeout))

	// Health check runs the liveness probe inline.
	router.GET("/health", handlers.System.Health)

	// Read views and report.
	router.GET("/groups", handlers.Group.ListGroups)
	router.GET("/students", handlers.Student.ListStudents)
	router.GET("/report/group/:group_name/semester/:year/:term", handlers.Report.GroupSemesterReport)

	// Mutating routes share a per-IP rate limit.
	writeLimiter := middleware.NewRateLimiter(120, time.Minute)
	writes := router.Group("/", writeLimiter.Middleware())
	{
		writes.POST("/groups", handlers.Group.CreateGroup)
		writes.POST("/students", handlers.Student.CreateStudent)
		writes.POST("/enroll", handlers.Enrollment.Enroll)
		writes.POST("/grade", handlers.Grade.UpsertGrade)
	}

	return router
}
