package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.EqualValues(t, 1, cfg.MinDBConns)
	assert.EqualValues(t, 5, cfg.MaxDBConns)
	assert.Equal(t, 30, cfg.DBConnectAttempts)
	assert.Equal(t, time.Second, cfg.DBConnectBackoff)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.RedisURL)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAX_DB_CONNS", "3")
	t.Setenv("DB_CONNECT_ATTEMPTS", "5")
	t.Setenv("DB_CONNECT_BACKOFF", "250ms")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	assert.EqualValues(t, 3, cfg.MaxDBConns)
	assert.Equal(t, 5, cfg.DBConnectAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.DBConnectBackoff)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("MAX_DB_CONNS", "many")
	t.Setenv("DB_CONNECT_BACKOFF", "soon")

	cfg := Load()

	assert.EqualValues(t, 5, cfg.MaxDBConns)
	assert.Equal(t, time.Second, cfg.DBConnectBackoff)
}
