package rateLimit

import (
	"sync"
	"time"
)

// RateLimiter counts requests per key in fixed windows.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count   int
	resetAt time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{windows: make(map[string]*window)}
}

func (rl *RateLimiter) Allow(key string, rate int, period time.Duration) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]
	if !ok || now.After(w.resetAt) {
		rl.prune(now)
		rl.windows[key] = &window{count: 1, resetAt: now.Add(period)}
		return true
	}

	w.count++
	return w.count <= rate
}

func (rl *RateLimiter) prune(now time.Time) {
	for k, w := range rl.windows {
		if now.After(w.resetAt) {
			delete(rl.windows, k)
		}
	}
}
