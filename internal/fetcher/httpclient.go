package fetcher

import (
	"log/slog"
	"time"

	"resty.dev/v3"
)

// ClientOptions tunes the HTTP client used to download the listing page
type ClientOptions struct {
	// Timeout bounds a single request. Zero means no timeout.
	Timeout time.Duration
	// UserAgent is sent with every request when non-empty
	UserAgent string
}

// NewHTTPClient creates a new HTTP client for the listing page.
// Retries stay disabled: a run either gets the page or reports failure.
func NewHTTPClient(baseURL string, opts ClientOptions) *resty.Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "text/html,application/xhtml+xml").
		SetRetryCount(0).
		AddRequestMiddleware(logRequest)

	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	return client
}

// logRequest logs outgoing requests for observability
func logRequest(c *resty.Client, r *resty.Request) error {
	slog.Debug("fetching listing page",
		"method", r.Method,
		"base_url", c.BaseURL())
	return nil
}
