package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "SITE_URL", "CORS_ALLOWED_ORIGINS", "METRICS_ENABLED", "LOG_FORM_DRAFTS"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "http://localhost:8080", cfg.SiteURL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.MetricsEnabled)
	assert.True(t, cfg.LogFormDrafts)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("SITE_URL", "https://etherlite.example/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("METRICS_ENABLED", "off")
	t.Setenv("LOG_FORM_DRAFTS", "false")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "https://etherlite.example", cfg.SiteURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.MetricsEnabled)
	assert.False(t, cfg.LogFormDrafts)
}

func TestGetBoolFallsBackOnGarbage(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "maybe")
	assert.True(t, getBool("METRICS_ENABLED", true))
	assert.False(t, getBool("METRICS_ENABLED", false))
}

func TestUnknownGinModeFallsBackToDebug(t *testing.T) {
	t.Setenv("GIN_MODE", "production")

	assert.Equal(t, "debug", LoadConfig().GinMode)
}
