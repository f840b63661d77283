package chat

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// userLimiter tracks the token bucket for one user
type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter bounds chat turns per user. Entries for idle users are
// cleaned up periodically.
type RateLimiter struct {
	limiters    map[string]*userLimiter
	ratePerMin  int
	burst       int
	mu          sync.Mutex
	cleanupTick *time.Ticker
	stopCleanup chan struct{}
}

// NewRateLimiter creates a per-user rate limiter allowing ratePerMin
// turns per minute with the given burst.
func NewRateLimiter(ratePerMin, burst int) *RateLimiter {
	rl := &RateLimiter{
		limiters:    make(map[string]*userLimiter),
		ratePerMin:  ratePerMin,
		burst:       burst,
		cleanupTick: time.NewTicker(5 * time.Minute),
		stopCleanup: make(chan struct{}),
	}

	go rl.cleanupRoutine()

	return rl
}

// Allow reports whether the user may send another chat turn now.
func (rl *RateLimiter) Allow(userID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.limiters[userID]
	if !exists {
		entry = &userLimiter{
			limiter: rate.NewLimiter(rate.Limit(float64(rl.ratePerMin)/60.0), rl.burst),
		}
		rl.limiters[userID] = entry
	}

	entry.lastSeen = time.Now()
	return entry.limiter.Allow()
}

func (rl *RateLimiter) cleanupRoutine() {
	for {
		select {
		case <-rl.cleanupTick.C:
			rl.cleanup()
		case <-rl.stopCleanup:
			rl.cleanupTick.Stop()
			return
		}
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-10 * time.Minute)
	for userID, entry := range rl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limiters, userID)
		}
	}
}

// Stop terminates the cleanup routine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCleanup)
}
