// Package http builds the retrying HTTP client shared by the REST clients
// (Cosmos LCD, indexer, Tendermint RPC) and offers GetJSON, which performs a
// GET and decodes a JSON body, reporting every failure as a
// transport.NetworkError.
package http

import (
	"net/http"
	"time"

	"github.com/gabapcia/chainscope/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

type config struct {
	timeout      time.Duration
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
	userAgent    string
}

type Option func(*config)

// DefaultUserAgent is sent when WithUserAgent is not given.
const DefaultUserAgent = "chainscope"

// NewClient creates a retryablehttp.Client. Defaults:
//
//   - timeout:      10 seconds
//   - retryWaitMin: 500 milliseconds
//   - retryWaitMax: 5 seconds
//   - retryMax:     2 retries
//
// Connection errors and 5xx responses are retried, 4xx responses are
// returned immediately. Every retry is logged at warn level.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      10 * time.Second,
		retryWaitMin: 500 * time.Millisecond,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
		userAgent:    DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	client.RequestLogHook = requestHook(cfg.userAgent)
	// Hand the last response back instead of a generic "giving up" error so
	// callers can report the real status code.
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return client
}

// requestHook runs before every attempt. It stamps the user agent and logs
// attempts after the first.
func requestHook(userAgent string) retryablehttp.RequestLogHook {
	return func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if req.Header.Get("User-Agent") == "" {
			req.Header.Set("User-Agent", userAgent)
		}

		if attempt > 0 {
			logger.Warn(req.Context(), "retrying http request",
				"http.method", req.Method,
				"http.url", req.URL.Redacted(),
				"http.attempt", attempt,
			)
		}
	}
}

// WithTimeout bounds a single attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many times a failed request is retried. Zero
// disables retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}
