package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DSN", "postgres://localhost:5432/attendance")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ATTENDANCE_TOKEN_TTL_MINUTES", "")
	t.Setenv("CHECKIN_BASE_URL", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("ENV", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "http://localhost:5173", cfg.CheckinBaseURL)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_TokenTTLFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ATTENDANCE_TOKEN_TTL_MINUTES", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Minute, cfg.TokenTTL)
}

func TestLoad_InvalidTokenTTLFallsBack(t *testing.T) {
	for _, raw := range []string{"abc", "-3", "0", "5.5"} {
		t.Run(raw, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("ATTENDANCE_TOKEN_TTL_MINUTES", raw)

			cfg, err := Load()
			require.NoError(t, err)

			assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
		})
	}
}

func TestLoad_RequiresDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost:5432/attendance")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}
