package chat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/nooros/backend/internal/infrastructure/resilience"
	"github.com/nooros/backend/internal/shared/types"
	"golang.org/x/time/rate"
)

// UpstreamError is a non-2xx answer from the completions endpoint
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d", e.Status)
}

type completionRequest struct {
	Model       string              `json:"model"`
	Messages    []types.ChatMessage `json:"messages"`
	Temperature float64             `json:"temperature"`
	MaxTokens   int                 `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message *types.ChatMessage `json:"message"`
	} `json:"choices"`
}

// Client talks to the completions endpoint
type Client struct {
	resty    *resty.Client
	limiter  *rate.Limiter
	breaker  *resilience.Breaker
	endpoint string
	apiKey   string
}

// NewClient creates the upstream client with retries and a circuit breaker
func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()

	// Retries live in the retryablehttp transport; resty only adds the
	// request builder and JSON handling.
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	restyClient := resty.NewWithClient(retryClient.StandardClient())
	restyClient.
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", "NoorOS-Chat/1.0").
		SetHeader("Content-Type", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	breaker := resilience.New("chat-upstream", resilience.Settings{
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsFailure: isUpstreamFailure,
	})

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		burst := int(cfg.RateLimit)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		resty:    restyClient,
		limiter:  limiter,
		breaker:  breaker,
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
	}
}

// Breaker exposes the circuit breaker state for health reporting
func (c *Client) Breaker() *resilience.Breaker { return c.breaker }

// Complete sends one completion request and returns the first choice's content
func (c *Client) Complete(ctx context.Context, req completionRequest) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	var content string
	err := c.breaker.Do(func() error {
		var out completionResponse
		resp, err := c.resty.R().
			SetContext(ctx).
			SetAuthToken(c.apiKey).
			SetBody(req).
			SetResult(&out).
			Post(c.endpoint)
		if err != nil {
			return fmt.Errorf("upstream request: %w", err)
		}
		if resp.IsError() {
			return &UpstreamError{Status: resp.StatusCode(), Detail: resp.String()}
		}
		if len(out.Choices) > 0 && out.Choices[0].Message != nil {
			content = out.Choices[0].Message.Content
		}
		return nil
	})
	return content, err
}

// Client errors are the caller's fault and do not open the breaker.
func isUpstreamFailure(err error) bool {
	if err == nil {
		return false
	}
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Status >= http.StatusInternalServerError ||
			upstream.Status == http.StatusTooManyRequests
	}
	return !errors.Is(err, context.Canceled)
}
