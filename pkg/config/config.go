package config

import (
	"os"
	"strings"
)

// Config holds all application configuration values
type Config struct {
	Port               string
	GinMode            string
	SiteURL            string
	CORSAllowedOrigins []string
	MetricsEnabled     bool
	LogFormDrafts      bool
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		GinMode:            ginMode(getEnv("GIN_MODE", "debug")),
		SiteURL:            strings.TrimSuffix(getEnv("SITE_URL", "http://localhost:8080"), "/"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		MetricsEnabled:     getBool("METRICS_ENABLED", true),
		LogFormDrafts:      getBool("LOG_FORM_DRAFTS", true),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// ginMode falls back to debug for values gin.SetMode would reject.
func ginMode(mode string) string {
	switch mode {
	case "debug", "release", "test":
		return mode
	default:
		return "debug"
	}
}

func getBool(key string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
