package fetcher

import "context"

// Source retrieves the raw HTML of the market listing page.
// There is no retry: a failed Fetch is final for the run.
type Source interface {
	// Fetch returns the response body as text.
	// Any response that arrives is usable; status codes are not inspected.
	Fetch(ctx context.Context) (string, error)

	// URL returns the address the source reads from
	URL() string
}
