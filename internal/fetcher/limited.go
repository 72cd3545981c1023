package fetcher

import (
	"context"
	"net/url"
)

// Waiter blocks until a fetch of host is permitted
type Waiter interface {
	Wait(ctx context.Context, host string) error
}

// LimitedSource delays each fetch until the upstream host's budget allows it
type LimitedSource struct {
	source Source
	waiter Waiter
	host   string
}

// NewLimitedSource wraps source so every Fetch first waits on waiter
func NewLimitedSource(source Source, waiter Waiter) *LimitedSource {
	host := source.URL()
	if u, err := url.Parse(source.URL()); err == nil && u.Host != "" {
		host = u.Host
	}

	return &LimitedSource{
		source: source,
		waiter: waiter,
		host:   host,
	}
}

// Fetch waits for the host budget, then fetches from the wrapped source
func (s *LimitedSource) Fetch(ctx context.Context) (string, error) {
	if err := s.waiter.Wait(ctx, s.host); err != nil {
		return "", NewTimeoutError(s.source.URL(), err)
	}
	return s.source.Fetch(ctx)
}

// URL implements the Source interface
func (s *LimitedSource) URL() string {
	return s.source.URL()
}
