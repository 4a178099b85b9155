package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RequestCounter provides a fixed-window request counter backed by Redis.
// Key format: reqcount:<client>:<window_start_unix>
type RequestCounter struct {
	client *redis.Client
}

// NewRequestCounter creates a RequestCounter wrapping the given Redis client.
func NewRequestCounter(client *redis.Client) *RequestCounter {
	return &RequestCounter{client: client}
}

// Incr bumps the counter for client in the current window and returns the
// new count. The key expires with the window, so stale windows clean
// themselves up.
func (c *RequestCounter) Incr(ctx context.Context, clientID string, window time.Duration) (int64, error) {
	key := c.key(clientID, window)

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("request counter: %w", err)
	}
	return incr.Val(), nil
}

func (c *RequestCounter) key(clientID string, window time.Duration) string {
	windowStart := time.Now().Unix() / int64(window.Seconds()) * int64(window.Seconds())
	return fmt.Sprintf("reqcount:%s:%d", clientID, windowStart)
}
