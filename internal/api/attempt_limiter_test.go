package api

import (
	"testing"
	"time"
)

func TestAttemptLimiterBlocksAfterLimit(t *testing.T) {
	limiter := newAttemptLimiter(loginAttemptLimit, loginAttemptWindow)
	now := time.Now()

	for attempt := 0; attempt < loginAttemptLimit; attempt++ {
		if limiter.blocked("10.0.0.1", now) {
			t.Fatalf("blocked after %d failures, limit is %d", attempt, loginAttemptLimit)
		}
		limiter.recordFailure("10.0.0.1", now)
	}

	if !limiter.blocked("10.0.0.1", now) {
		t.Fatal("expected block at the failure limit")
	}
	if limiter.blocked("10.0.0.2", now) {
		t.Fatal("another client must not inherit the block")
	}
}

func TestAttemptLimiterForgetsOldFailures(t *testing.T) {
	limiter := newAttemptLimiter(loginAttemptLimit, loginAttemptWindow)
	past := time.Now().Add(-2 * loginAttemptWindow)

	for attempt := 0; attempt < loginAttemptLimit; attempt++ {
		limiter.recordFailure("10.0.0.1", past)
	}

	if limiter.blocked("10.0.0.1", time.Now()) {
		t.Fatal("failures outside the window must not count")
	}
}

func TestAttemptLimiterResetClearsClient(t *testing.T) {
	limiter := newAttemptLimiter(loginAttemptLimit, loginAttemptWindow)
	now := time.Now()

	for attempt := 0; attempt < loginAttemptLimit; attempt++ {
		limiter.recordFailure("10.0.0.1", now)
	}
	limiter.reset("10.0.0.1")

	if limiter.blocked("10.0.0.1", now) {
		t.Fatal("a successful login must clear the failure history")
	}
}
