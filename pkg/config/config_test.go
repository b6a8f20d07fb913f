package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "CourseHub", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "http://localhost:8080", cfg.App.BaseURL)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "coursehub", cfg.Mongo.DBName)

	assert.Equal(t, "redis://localhost:6379", cfg.Redis.URL)

	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.Equal(t, 24, cfg.Session.TTLHours)
	assert.False(t, cfg.Session.Secure)

	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, int64(104857600), cfg.Storage.MaxUploadSize)
	assert.True(t, cfg.Storage.RequireAuthForFileRoutes)

	assert.True(t, cfg.Sweep.Enabled)
	assert.Equal(t, "0 3 * * *", cfg.Sweep.Cron)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_BASE_URL", "https://coursehub.example.com")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("STORAGE_MAX_UPLOAD_SIZE", "1048576")
	t.Setenv("FILE_ROUTES_REQUIRE_AUTH", "false")
	t.Setenv("STORAGE_TYPE", "s3")
	t.Setenv("SWEEP_ENABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "https://coursehub.example.com", cfg.App.BaseURL)
	assert.Equal(t, 2, cfg.Session.TTLHours)
	assert.Equal(t, int64(1048576), cfg.Storage.MaxUploadSize)
	assert.False(t, cfg.Storage.RequireAuthForFileRoutes)
	assert.Equal(t, "s3", cfg.Storage.Type)
	assert.False(t, cfg.Sweep.Enabled)
}

func TestConfig_EnvHelpers(t *testing.T) {
	cfg := &Config{App: AppConfig{Env: "development"}}
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.App.Env = "production"
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}
