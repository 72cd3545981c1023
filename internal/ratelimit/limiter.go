package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter bounds how often an upstream host may be fetched.
// Each host gets its own token bucket, created on first use.
type Limiter struct {
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	mu       sync.Mutex
}

// New creates a limiter allowing perMinute fetches per host.
// A non-positive perMinute disables limiting.
func New(perMinute float64, burst int) *Limiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(perMinute / 60.0)
	}
	if burst < 1 {
		burst = 1
	}

	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

// get returns the bucket for host, creating it if needed
func (l *Limiter) get(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters[host]
	if !exists {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[host] = limiter
	}
	return limiter
}

// Wait blocks until a fetch of host is permitted
// It returns an error if the context is canceled before the fetch can proceed
func (l *Limiter) Wait(ctx context.Context, host string) error {
	return l.get(host).Wait(ctx)
}

// Allow reports whether a fetch of host may happen now
func (l *Limiter) Allow(host string) bool {
	return l.get(host).Allow()
}
