package feed

import (
	"github.com/gabapcia/chainscope/internal/pkg/resilience/retry"

	"go.opentelemetry.io/otel/metric"
)

type config struct {
	maxRows             int
	backlogLimit        int
	backlogRetry        retry.Retry
	reconnectRetry      retry.Retry
	notificationHandler NotificationHandler
	meter               metric.Meter
}

// Option configures a Service or a Reconciler.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		maxRows:             DefaultMaxRows,
		notificationHandler: defaultNotificationHandler,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.maxRows <= 0 {
		cfg.maxRows = DefaultMaxRows
	}
	if cfg.backlogLimit <= 0 {
		cfg.backlogLimit = cfg.maxRows
	}
	return cfg
}

// WithMaxRows bounds the window. Values <= 0 select DefaultMaxRows.
func WithMaxRows(n int) Option {
	return func(c *config) {
		c.maxRows = n
	}
}

// WithBacklogLimit sets how many transactions the backlog asks for.
// Defaults to the row limit.
func WithBacklogLimit(n int) Option {
	return func(c *config) {
		c.backlogLimit = n
	}
}

// WithRetry retries the backlog fetch. Without it the backlog is fetched once.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.backlogRetry = r
	}
}

// WithReconnect re-subscribes with r when the live subscription fails or
// closes. Without it a lost subscription is not reopened.
func WithReconnect(r retry.Retry) Option {
	return func(c *config) {
		c.reconnectRetry = r
	}
}

// WithNotificationHandler replaces the default handler, which logs.
func WithNotificationHandler(h NotificationHandler) Option {
	return func(c *config) {
		c.notificationHandler = h
	}
}

// WithMeter records feed metrics on m instead of the global meter provider.
func WithMeter(m metric.Meter) Option {
	return func(c *config) {
		c.meter = m
	}
}
