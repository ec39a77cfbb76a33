// Package memory is the in-process block time cache, backed by bigcache.
package memory

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/allegro/bigcache/v3"
)

const defaultLifeWindow = 24 * time.Hour

type config struct {
	lifeWindow time.Duration
	maxSizeMB  int
}

type Option func(*config)

// WithTTL sets how long an entry lives before eviction.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		if ttl > 0 {
			c.lifeWindow = ttl
		}
	}
}

// WithMaxSizeMB bounds the cache memory. Zero means unbounded.
func WithMaxSizeMB(mb int) Option {
	return func(c *config) {
		if mb >= 0 {
			c.maxSizeMB = mb
		}
	}
}

type blockTimeCache struct {
	cache *bigcache.BigCache
}

// NewBlockTimeCache starts a cache. Its janitor stops when ctx is done or
// Close is called.
func NewBlockTimeCache(ctx context.Context, opts ...Option) (*blockTimeCache, error) {
	cfg := config{
		lifeWindow: defaultLifeWindow,
		maxSizeMB:  64,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	bcfg := bigcache.DefaultConfig(cfg.lifeWindow)
	bcfg.Shards = 64
	bcfg.CleanWindow = cfg.lifeWindow / 2
	bcfg.HardMaxCacheSize = cfg.maxSizeMB
	bcfg.MaxEntrySize = 8
	bcfg.Verbose = false

	cache, err := bigcache.New(ctx, bcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create block time cache: %w", err)
	}

	return &blockTimeCache{cache: cache}, nil
}

func (c *blockTimeCache) Close() error {
	return c.cache.Close()
}

// Get returns the cached timestamp of the block at height.
func (c *blockTimeCache) Get(_ context.Context, height int64) (time.Time, bool, error) {
	val, err := c.cache.Get(strconv.FormatInt(height, 10))
	if err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}

	if len(val) != 8 {
		return time.Time{}, false, fmt.Errorf("invalid block time entry of %d bytes", len(val))
	}

	return time.Unix(0, int64(binary.BigEndian.Uint64(val))).UTC(), true, nil
}

// Set caches the timestamp of the block at height.
func (c *blockTimeCache) Set(_ context.Context, height int64, t time.Time) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(t.UnixNano()))

	return c.cache.Set(strconv.FormatInt(height, 10), buf)
}
