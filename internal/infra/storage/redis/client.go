// Package redis stores explorer data that is shared between instances,
// currently block timestamps.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const defaultTTL = 24 * time.Hour

type config struct {
	chainID string
	ttl     time.Duration
}

type Option func(*config)

// WithChainID namespaces keys by chain, so several networks can share a
// database.
func WithChainID(chainID string) Option {
	return func(c *config) {
		c.chainID = chainID
	}
}

// WithTTL sets the expiration of cached entries. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		if ttl >= 0 {
			c.ttl = ttl
		}
	}
}

type client struct {
	conn    *redis.Client
	chainID string
	ttl     time.Duration
}

func (c *client) Close() error {
	return c.conn.Close()
}

func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	cfg := config{
		chainID: "default",
		ttl:     defaultTTL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn:    conn,
		chainID: cfg.chainID,
		ttl:     cfg.ttl,
	}, nil
}
