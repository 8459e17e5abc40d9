package auth

import (
	"context"
	"sync"
	"time"
)

// RateLimiter defines an interface for rate limiting functionality
type RateLimiter interface {
	// Allow checks if the request should be allowed based on the key
	Allow(ctx context.Context, key string) (bool, int, time.Time, error)
	// Reset resets the counter for a specific key
	Reset(ctx context.Context, key string) error
	// WithLimit creates a new rate limiter with the specified limit
	WithLimit(maxAttempts int64, window time.Duration) RateLimiter
}

type windowCounter struct {
	count       int64
	windowStart time.Time
}

// MemoryRateLimiter implements fixed-window rate limiting in process
// memory. The whole catalog lives in memory anyway, so the limiter
// follows the same single-process lifetime.
type MemoryRateLimiter struct {
	mu          sync.Mutex
	counters    map[string]windowCounter
	window      time.Duration
	maxAttempts int64
}

// NewMemoryRateLimiter creates a new in-memory rate limiter
func NewMemoryRateLimiter(window time.Duration, maxAttempts int64) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		counters:    make(map[string]windowCounter),
		window:      window,
		maxAttempts: maxAttempts,
	}
}

// WithLimit creates a new rate limiter with the specified limit
func (rl *MemoryRateLimiter) WithLimit(maxAttempts int64, window time.Duration) RateLimiter {
	return NewMemoryRateLimiter(window, maxAttempts)
}

// Allow checks if the request should be allowed based on the key
func (rl *MemoryRateLimiter) Allow(ctx context.Context, key string) (bool, int, time.Time, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	windowStart := now.Truncate(rl.window)

	counter, exists := rl.counters[key]
	if !exists || counter.windowStart.Before(windowStart) {
		counter = windowCounter{windowStart: windowStart}
	}
	counter.count++
	rl.counters[key] = counter

	remaining := rl.maxAttempts - counter.count
	if remaining < 0 {
		remaining = 0
	}

	resetTime := windowStart.Add(rl.window)
	allowed := counter.count <= rl.maxAttempts

	return allowed, int(remaining), resetTime, nil
}

// Reset resets the counter for a specific key
func (rl *MemoryRateLimiter) Reset(ctx context.Context, key string) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.counters, key)
	return nil
}

// GetWindow returns the rate limit window duration
func (rl *MemoryRateLimiter) GetWindow() time.Duration {
	return rl.window
}

// GetMaxAttempts returns the maximum number of attempts allowed
func (rl *MemoryRateLimiter) GetMaxAttempts() int64 {
	return rl.maxAttempts
}
