package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const blockTimeKeyPrefix = "blocktime"

// blockTimeKey builds the key holding the timestamp of one block:
//
//	"blocktime:<chainID>:<height>"
func blockTimeKey(chainID string, height int64) string {
	return fmt.Sprintf("%s:%s:%d", blockTimeKeyPrefix, chainID, height)
}

// Get returns the cached timestamp of the block at height. The boolean is
// false when nothing is cached.
func (c *client) Get(ctx context.Context, height int64) (time.Time, bool, error) {
	val, err := c.conn.Get(ctx, blockTimeKey(c.chainID, height)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}

	nanos, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid block time %q: %w", val, err)
	}

	return time.Unix(0, nanos).UTC(), true, nil
}

// Set caches the timestamp of the block at height, stored as Unix
// nanoseconds.
func (c *client) Set(ctx context.Context, height int64, t time.Time) error {
	return c.conn.Set(ctx, blockTimeKey(c.chainID, height), strconv.FormatInt(t.UnixNano(), 10), c.ttl).Err()
}
