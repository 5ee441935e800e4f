package ratelimit

import (
	"context"
	"time"
)

// Limits caps requests per sliding window. A zero limit disables that window.
type Limits struct {
	PerMinute int
	PerHour   int
	PerDay    int
}

type RateLimiter interface {
	// Allow records one request for key and reports whether it fits every window.
	Allow(ctx context.Context, key string, limits Limits) (bool, error)
	// Count is the number of requests recorded for key within window.
	Count(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
