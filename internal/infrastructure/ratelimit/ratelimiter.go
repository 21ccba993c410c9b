package ratelimit

import "time"

// Limit describes a sliding window: at most Requests calls per Window.
type Limit struct {
	Requests int
	Window   time.Duration
}

type RateLimiter interface {
	Allow(key string, limit Limit) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}
