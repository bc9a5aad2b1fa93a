package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Desktop   DesktopConfig
	Storage   StorageConfig
	Chat      ChatConfig
	CORS      CORSConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// DesktopConfig holds the initial viewport used until a client reports its own.
type DesktopConfig struct {
	ViewportWidth    int `envconfig:"DESKTOP_VIEWPORT_WIDTH" default:"1440"`
	ViewportHeight   int `envconfig:"DESKTOP_VIEWPORT_HEIGHT" default:"900"`
	TopStrip         int `envconfig:"DESKTOP_TOP_STRIP" default:"24"`
	MobileBreakpoint int `envconfig:"DESKTOP_MOBILE_BREAKPOINT" default:"768"`
}

// StorageConfig selects where the layout is persisted.
type StorageConfig struct {
	Backend string `envconfig:"STORAGE_BACKEND" default:"sqlite"`
	Path    string `envconfig:"STORAGE_PATH" default:"data/nooros.db"`
}

// ChatConfig holds the assistant proxy configuration.
type ChatConfig struct {
	APIKey       string        `envconfig:"OPENAI_API_KEY"`
	Model        string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	Endpoint     string        `envconfig:"CHAT_ENDPOINT" default:"https://api.openai.com/v1/chat/completions"`
	Timeout      time.Duration `envconfig:"CHAT_TIMEOUT" default:"30s"`
	ContactEmail string        `envconfig:"CHAT_CONTACT_EMAIL" default:"noorali05@utexas.edu"`
	MaxRetries   int           `envconfig:"CHAT_MAX_RETRIES" default:"2"`
	RateLimit    float64       `envconfig:"CHAT_RATE_LIMIT" default:"2"`
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.Desktop.ViewportWidth <= 0 || c.Desktop.ViewportHeight <= 0 {
		return fmt.Errorf("invalid viewport %dx%d", c.Desktop.ViewportWidth, c.Desktop.ViewportHeight)
	}
	if c.Desktop.TopStrip < 0 || c.Desktop.TopStrip >= c.Desktop.ViewportHeight {
		return fmt.Errorf("invalid top strip %d", c.Desktop.TopStrip)
	}
	switch c.Storage.Backend {
	case "memory":
	case "file", "sqlite":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage backend %q requires STORAGE_PATH", c.Storage.Backend)
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d", c.RateLimit.RequestsPerSecond)
	}
	return nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Desktop: DesktopConfig{
			ViewportWidth:    1440,
			ViewportHeight:   900,
			TopStrip:         24,
			MobileBreakpoint: 768,
		},
		Storage: StorageConfig{
			Backend: "sqlite",
			Path:    "data/nooros.db",
		},
		Chat: ChatConfig{
			Model:        "gpt-4o-mini",
			Endpoint:     "https://api.openai.com/v1/chat/completions",
			Timeout:      30 * time.Second,
			ContactEmail: "noorali05@utexas.edu",
			MaxRetries:   2,
			RateLimit:    2,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		},
	}
}
