package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "HOST", "LOG_LEVEL", "LOG_DEV",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "RATE_LIMIT_ENABLED",
	"DESKTOP_VIEWPORT_WIDTH", "DESKTOP_VIEWPORT_HEIGHT", "DESKTOP_TOP_STRIP", "DESKTOP_MOBILE_BREAKPOINT",
	"STORAGE_BACKEND", "STORAGE_PATH",
	"OPENAI_API_KEY", "OPENAI_MODEL", "CHAT_ENDPOINT", "CHAT_TIMEOUT", "CHAT_CONTACT_EMAIL",
	"CHAT_MAX_RETRIES", "CHAT_RATE_LIMIT", "CORS_ORIGINS",
}

// clearEnv unsets every variable Load reads and restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		if value, ok := os.LookupEnv(key); ok {
			t.Setenv(key, value)
			require.NoError(t, os.Unsetenv(key))
		}
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	// Server config
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Rate limit config
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)

	// Desktop config
	assert.Equal(t, 1440, cfg.Desktop.ViewportWidth)
	assert.Equal(t, 900, cfg.Desktop.ViewportHeight)
	assert.Equal(t, 24, cfg.Desktop.TopStrip)
	assert.Equal(t, 768, cfg.Desktop.MobileBreakpoint)

	// Chat stays offline without a key
	assert.Empty(t, cfg.Chat.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.Chat.Model)

	assert.NoError(t, cfg.Validate())
}

func TestLoadMatchesDefault(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	clearEnv(t)
	envVars := map[string]string{
		"PORT":                      "9000",
		"HOST":                      "127.0.0.1",
		"LOG_LEVEL":                 "debug",
		"LOG_DEV":                   "true",
		"RATE_LIMIT_RPS":            "500",
		"RATE_LIMIT_BURST":          "1000",
		"RATE_LIMIT_ENABLED":        "false",
		"DESKTOP_VIEWPORT_WIDTH":    "390",
		"DESKTOP_VIEWPORT_HEIGHT":   "844",
		"DESKTOP_MOBILE_BREAKPOINT": "600",
		"STORAGE_BACKEND":           "file",
		"STORAGE_PATH":              "/tmp/layout",
		"OPENAI_API_KEY":            "sk-test",
		"OPENAI_MODEL":              "gpt-4o",
		"CHAT_TIMEOUT":              "5s",
		"CORS_ORIGINS":              "https://noor.dev,https://www.noor.dev",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1000, cfg.RateLimit.Burst)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 390, cfg.Desktop.ViewportWidth)
	assert.Equal(t, 844, cfg.Desktop.ViewportHeight)
	assert.Equal(t, 600, cfg.Desktop.MobileBreakpoint)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/layout", cfg.Storage.Path)
	assert.Equal(t, "sk-test", cfg.Chat.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Chat.Model)
	assert.Equal(t, 5*time.Second, cfg.Chat.Timeout)
	assert.Equal(t, []string{"https://noor.dev", "https://www.noor.dev"}, cfg.CORS.AllowedOrigins)
}

func TestLoadWithPartialEnvironmentVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Verify overridden values
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)

	// Verify default values still apply
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
}

func TestInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric rps", "RATE_LIMIT_RPS", "fast"},
		{"zero width", "DESKTOP_VIEWPORT_WIDTH", "0"},
		{"strip taller than viewport", "DESKTOP_TOP_STRIP", "900"},
		{"unknown backend", "STORAGE_BACKEND", "redis"},
		{"bad duration", "CHAT_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)

			// LoadOrDefault falls back instead of failing
			assert.Equal(t, Default(), LoadOrDefault())
		})
	}
}

func TestStorageBackendsNeedPath(t *testing.T) {
	cfg := Default()
	cfg.Storage.Path = ""
	assert.Error(t, cfg.Validate())

	cfg.Storage.Backend = "memory"
	assert.NoError(t, cfg.Validate())
}
