package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Login throttling: a client that fails loginAttemptLimit times inside
// loginAttemptWindow is rejected until the window slides past. The dataset
// holds a handful of claimable participant ids, so unthrottled guessing
// would be cheap.
const (
	loginAttemptLimit  = 5
	loginAttemptWindow = 10 * time.Minute
)

type attemptLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	failures map[string][]time.Time
}

func newAttemptLimiter(limit int, window time.Duration) *attemptLimiter {
	return &attemptLimiter{
		limit:    limit,
		window:   window,
		failures: make(map[string][]time.Time),
	}
}

func (limiter *attemptLimiter) blocked(key string, now time.Time) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	return len(limiter.pruneLocked(key, now)) >= limiter.limit
}

func (limiter *attemptLimiter) recordFailure(key string, now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	limiter.failures[key] = append(limiter.pruneLocked(key, now), now)
}

func (limiter *attemptLimiter) reset(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.failures, key)
}

func (limiter *attemptLimiter) pruneLocked(key string, now time.Time) []time.Time {
	threshold := now.Add(-limiter.window)
	var kept []time.Time
	for _, failure := range limiter.failures[key] {
		if failure.After(threshold) {
			kept = append(kept, failure)
		}
	}
	if len(kept) == 0 {
		delete(limiter.failures, key)
		return nil
	}
	limiter.failures[key] = kept
	return kept
}

func requestLimiterKey(c *fiber.Ctx) string {
	if key := strings.TrimSpace(c.IP()); key != "" {
		return key
	}
	return "unknown"
}
