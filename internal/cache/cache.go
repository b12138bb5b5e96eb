package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a best-effort redis cache for job listings. A nil *Client is
// valid and behaves like an always-empty cache, so callers can run without
// redis at all (tests, local dev). Redis errors are never surfaced: a read
// failure looks like a miss and a write failure is dropped, keeping the job
// store the only hard dependency on the read path.
type Client struct {
	client *redis.Client
}

// New connects to redis at addr. The connection is lazy, so a down redis
// only shows up as cache misses later.
func New(addr, password string, db int) *Client {
	return &Client{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// Get returns the cached bytes for key, or nil on a miss.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors both read as a miss
		return nil, nil
	}
	return res, nil
}

// Set stores value under key for ttl.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Set(ctx, key, value, ttl).Err()
	return nil
}

// Delete drops key, used to invalidate the listing cache after a write.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Del(ctx, key).Err()
	return nil
}
