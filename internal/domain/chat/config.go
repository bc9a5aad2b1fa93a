package chat

import "time"

const (
	DefaultModel        = "gpt-4o-mini"
	DefaultEndpoint     = "https://api.openai.com/v1/chat/completions"
	DefaultContactEmail = "noorali05@utexas.edu"
	DefaultTemperature  = 0.6
	DefaultMaxTokens    = 400
	DefaultTimeout      = 30 * time.Second
)

// Config configures the assistant proxy
type Config struct {
	APIKey       string
	Model        string
	Endpoint     string
	Timeout      time.Duration
	Temperature  float64
	MaxTokens    int
	ContactEmail string
	MaxRetries   int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	RateLimit    float64 // requests per second, 0 = unlimited
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() Config {
	return Config{
		Model:        DefaultModel,
		Endpoint:     DefaultEndpoint,
		Timeout:      DefaultTimeout,
		Temperature:  DefaultTemperature,
		MaxTokens:    DefaultMaxTokens,
		ContactEmail: DefaultContactEmail,
		MaxRetries:   2,
		RetryWaitMin: 500 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Model == "" {
		c.Model = d.Model
	}
	if c.Endpoint == "" {
		c.Endpoint = d.Endpoint
	}
	if c.Timeout <= 0 {
		c.Timeout = d.Timeout
	}
	if c.Temperature <= 0 {
		c.Temperature = d.Temperature
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = d.MaxTokens
	}
	if c.ContactEmail == "" {
		c.ContactEmail = d.ContactEmail
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.RetryWaitMin <= 0 {
		c.RetryWaitMin = d.RetryWaitMin
	}
	if c.RetryWaitMax < c.RetryWaitMin {
		c.RetryWaitMax = c.RetryWaitMin
	}
	return c
}
