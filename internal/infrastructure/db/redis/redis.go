// Package redis owns the Redis-backed pieces of the service: the login
// throttle counters and the readiness ping. Redis is optional at runtime;
// callers that get a connect error run without it.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Config names the connection settings read from the environment.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect dials Redis and proves the connection with a bounded ping, so a
// dead instance is caught at startup rather than on the first login.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = pingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
