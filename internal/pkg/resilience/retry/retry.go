// Package retry runs operations that may fail temporarily, backing off
// exponentially between attempts. It wraps avast/retry-go behind a small
// interface so services (the feed session, the websocket subscriber) can
// take a Retry as a dependency and tests can substitute a mock.
//
//	r := retry.New(
//	    retry.WithAttempts(0), // until ctx is done
//	    retry.WithOnRetry(func(n uint, err error) { ... }),
//	)
//	err := r.Execute(ctx, func() error { return subscribe(ctx) })
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation with retry logic.
type Retry interface {
	// Execute runs operation until it returns nil, the attempts are
	// exhausted or ctx is done. The operation must be safe to call more than
	// once.
	Execute(ctx context.Context, operation func() error) error
}

// OnRetryFunc is called after a failed attempt. n is the zero-based attempt
// number.
type OnRetryFunc func(n uint, err error)

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint          // maximum attempts, 0 = unlimited
	delay       time.Duration // base delay between attempts
	maxDelay    time.Duration // cap on the backoff delay
	lastErrOnly bool          // return only the last error
	onRetry     OnRetryFunc   // optional hook, nil = none
}

// Option configures New.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry. Defaults:
//   - attempts:    3
//   - delay:       1 second, doubled on each attempt
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements Retry.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}
	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(retry.OnRetryFunc(r.cfg.onRetry)))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts, the first one included.
// Zero retries until the operation succeeds or ctx is done.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay before the first retry.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential growth of the delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly selects between returning only the final error (true)
// and a retry.Error listing every attempt's error (false).
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithOnRetry registers a hook called after failed attempts.
func WithOnRetry(fn OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}
