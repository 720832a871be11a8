package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func setRequired(t *testing.T) {
	t.Setenv("ENV_CHEK", "1")
	t.Setenv("ADMIN_SECRET", "tijera")
	t.Setenv("JWT_ACCESS_SECRET", "a")
	t.Setenv("JWT_REFRESH_SECRET", "r")
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.True(t, cfg.GeofenceEnabled)
	assert.InDelta(t, -32.2236, cfg.VenueLat, 1e-9)
	assert.InDelta(t, 200, cfg.VenueRadiusMeters, 1e-9)
	assert.Equal(t, 10*time.Minute, cfg.WisdomCacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.FinishedRetention)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	setRequired(t)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("VENUE_RADIUS_METERS", "350")
	t.Setenv("CORS_ORIGINS", "https://tulook.ar, https://admin.tulook.ar")
	t.Setenv("GEOFENCE_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.InDelta(t, 350, cfg.VenueRadiusMeters, 1e-9)
	assert.False(t, cfg.GeofenceEnabled)
	assert.Equal(t, []string{"https://tulook.ar", "https://admin.tulook.ar"}, cfg.AllowedOrigins())
}

func TestLoadValidates(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ENV_CHEK", "1")
	t.Setenv("JWT_ACCESS_SECRET", "a")
	t.Setenv("JWT_REFRESH_SECRET", "r")

	_, err := Load()
	assert.ErrorContains(t, err, "ADMIN_SECRET")

	t.Setenv("ADMIN_SECRET", "tijera")
	t.Setenv("DB_DRIVER", "mysql")
	_, err = Load()
	assert.ErrorContains(t, err, "DB_DRIVER")
}
