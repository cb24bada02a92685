package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campushq/student-records-backend/internal/config"
	"github.com/campushq/student-records-backend/internal/database"
	"github.com/campushq/student-records-backend/internal/handler"
	"github.com/campushq/student-records-backend/internal/logger"
	"github.com/campushq/student-records-backend/internal/repository"
	"github.com/campushq/student-records-backend/internal/router"
	"github.com/campushq/student-records-backend/internal/service"
	"github.com/campushq/student-records-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Student Records Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	// Retries with fixed backoff; the process must not serve traffic
	// until connectivity has been proven once.
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis (optional read-view cache) ───────────────────
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
	} else {
		log.Info().Msg("REDIS_URL not set, read-view cache disabled")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	groupRepo := repository.NewGroupRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	gradeRepo := repository.NewGradeRepository(pool)
	reportRepo := repository.NewReportRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	groupService := service.NewGroupService(groupRepo, rdb, cfg.ListCacheTTL, log)
	studentService := service.NewStudentService(studentRepo, rdb, cfg.ListCacheTTL, log)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo)
	gradeService := service.NewGradeService(gradeRepo)
	reportService := service.NewReportService(reportRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		System:     handler.NewSystemHandler(pool, log),
		Group:      handler.NewGroupHandler(groupService),
		Student:    handler.NewStudentHandler(studentService),
		Enrollment: handler.NewEnrollmentHandler(enrollmentService),
		Grade:      handler.NewGradeHandler(gradeService),
		Report:     handler.NewReportHandler(reportService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
