package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultLimit  = 100
	defaultWindow = 15 * time.Minute
)

// Limiter provides fixed-window request counting backed by Redis.
// Key format: ratelimit:<client>:<window_index>
type Limiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewLimiter creates a Limiter allowing limit requests per window.
// Non-positive arguments fall back to 100 requests per 15 minutes.
func NewLimiter(client *redis.Client, limit int, window time.Duration) *Limiter {
	if limit <= 0 {
		limit = defaultLimit
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &Limiter{client: client, limit: int64(limit), window: window}
}

// Allow counts a request for the given client key and reports whether it is
// still within the window's budget. The counter expires with the window.
func (l *Limiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	key := l.key(clientKey)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	return n <= l.limit, nil
}

func (l *Limiter) key(clientKey string) string {
	windowIndex := time.Now().Unix() / int64(l.window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%d", clientKey, windowIndex)
}
