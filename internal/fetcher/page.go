package fetcher

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"strings"

	"resty.dev/v3"
)

// PageSource fetches the listing page over HTTP
type PageSource struct {
	url    string
	client *resty.Client
}

// NewPageSource creates a source reading from url
func NewPageSource(url string, opts ClientOptions) *PageSource {
	return &PageSource{
		url:    url,
		client: NewHTTPClient(url, opts),
	}
}

// Fetch retrieves the listing page body
func (s *PageSource) Fetch(ctx context.Context) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get("")

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", NewTimeoutError(s.url, err)
		}
		return "", NewNetworkError(s.url, err)
	}

	contentType := resp.Header().Get("Content-Type")
	if !isText(contentType) {
		return "", NewContentError(s.url, contentType)
	}

	slog.Debug("fetched listing page",
		"url", s.url,
		"status_code", resp.StatusCode(),
		"bytes", len(resp.Bytes()))

	return resp.String(), nil
}

// URL returns the listing page address
func (s *PageSource) URL() string {
	return s.url
}

// isText reports whether a Content-Type header describes a text body.
// A missing header is accepted.
func isText(contentType string) bool {
	if contentType == "" {
		return true
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return strings.HasPrefix(mediaType, "text/") || mediaType == "application/xhtml+xml"
}
