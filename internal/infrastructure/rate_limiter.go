package infrastructure

import (
	"sync"
	"time"
)

// RateLimiter is a per-key sliding window limiter used for login and
// password-reset attempts.
type RateLimiter struct {
	requests map[string][]time.Time
	window   time.Duration
	limit    int
	mutex    sync.RWMutex
}

func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	rateLimitWindow := GetEnvAsDuration("RATE_LIMIT_WINDOW", window)
	rateLimitMaxRequests := GetEnvAsInt("RATE_LIMIT_MAX_REQUESTS", limit)

	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		window:   rateLimitWindow,
		limit:    rateLimitMaxRequests,
	}

	go rl.cleanupStaleEntries()
	return rl
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	recent := rl.requests[key][:0]
	for _, t := range rl.requests[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= rl.limit {
		rl.requests[key] = recent
		return false
	}

	rl.requests[key] = append(recent, now)
	return true
}

func (rl *RateLimiter) cleanupStaleEntries() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mutex.Lock()
		cutoff := time.Now().Add(-rl.window)
		for key, times := range rl.requests {
			stale := true
			for _, t := range times {
				if t.After(cutoff) {
					stale = false
					break
				}
			}
			if stale {
				delete(rl.requests, key)
			}
		}
		rl.mutex.Unlock()
	}
}
