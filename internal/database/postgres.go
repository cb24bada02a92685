package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campushq/student-records-backend/internal/config"
)

// NewPostgresPool creates and validates a PostgreSQL connection pool.
//
// The database is usually the last piece of the stack to come up, so the
// initial connection is retried with a fixed backoff. Each attempt creates a
// pool and runs the liveness probe; only a pool that has answered the probe is
// handed out. After cfg.DBConnectAttempts failures the last error is returned
// and the caller is expected to treat it as fatal.
func NewPostgresPool(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = cfg.MinDBConns
	poolCfg.MaxConns = cfg.MaxDBConns

	var lastErr error
	for attempt := 1; attempt <= cfg.DBConnectAttempts; attempt++ {
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if err = Probe(ctx, pool); err == nil {
				log.Info().
					Int32("max_conns", cfg.MaxDBConns).
					Int("attempt", attempt).
					Msg("PostgreSQL connected")
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err

		if attempt == cfg.DBConnectAttempts {
			break
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("backoff", cfg.DBConnectBackoff).
			Msg("PostgreSQL not ready, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.DBConnectBackoff):
		}
	}

	return nil, fmt.Errorf("connect after %d attempts: %w", cfg.DBConnectAttempts, lastErr)
}

// Probe runs the liveness check used at startup and by the health endpoint.
// It executes a real query on a pooled connection each time it is called, so
// the result is never stale.
func Probe(ctx context.Context, pool *pgxpool.Pool) error {
	var one int
	if err := pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("liveness probe: %w", err)
	}
	return nil
}
