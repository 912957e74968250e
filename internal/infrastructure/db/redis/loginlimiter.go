package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 10
	defaultWindow      = time.Minute
)

// LoginLimiter throttles authentication attempts per (username, IP) with a
// fixed window counter in Redis.
// Key format: login_attempts:<username>:<ip>
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
// Non-positive limits fall back to the defaults.
func NewLoginLimiter(client *redis.Client, maxAttempts int64, window time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

// Allow records one attempt and reports whether it is within the window's
// budget. The first attempt in a window sets the key expiry.
func (l *LoginLimiter) Allow(ctx context.Context, username, ip string) (bool, error) {
	key := l.key(username, ip)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("login throttle: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("login throttle expire: %w", err)
		}
	}
	return n <= l.maxAttempts, nil
}

func (l *LoginLimiter) key(username, ip string) string {
	return fmt.Sprintf("login_attempts:%s:%s", username, ip)
}
