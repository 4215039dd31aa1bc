package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/hackathon")
	t.Setenv("SESSION_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.ServerPort)
	require.Equal(t, AuthModeCookie, cfg.AuthMode)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, 120, cfg.RateLimitRPM)
	require.Equal(t, 20, cfg.AuthRateLimitRPM)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.False(t, cfg.IsProduction())
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SESSION_SECRET", "secret")

	_, err := Load()
	require.Error(t, err)
}

func TestCookieModeRequiresSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/hackathon")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("AUTH_MODE", "cookie")

	_, err := Load()
	require.Error(t, err)
}

func TestHeaderModeNeedsNoSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/hackathon")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("AUTH_MODE", "header")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, AuthModeHeader, cfg.AuthMode)
}

func TestRejectsUnknownAuthMode(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/hackathon")
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("AUTH_MODE", "basic")

	_, err := Load()
	require.Error(t, err)
}
