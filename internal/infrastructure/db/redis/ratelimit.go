package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultLimit  = 20
	defaultWindow = time.Minute
)

// LoginLimiter is a fixed-window counter backed by Redis.
// Key format: throttle:login:<key>
type LoginLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewLoginLimiter creates a limiter allowing limit attempts per window.
// Non-positive arguments fall back to 20/min.
func NewLoginLimiter(client *redis.Client, limit int64, window time.Duration) *LoginLimiter {
	if limit <= 0 {
		limit = defaultLimit
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginLimiter{client: client, limit: limit, window: window}
}

// Allow reports whether another attempt under key fits in the current window.
// The first attempt in a window sets the key's expiry.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := fmt.Sprintf("throttle:login:%s", key)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("throttle expire: %w", err)
		}
	}
	return n <= l.limit, nil
}
