package testutil

import (
	"context"

	"marketboard/internal/fetcher"
)

// MockSource is a mock implementation of the Source interface for testing
type MockSource struct {
	FetchFunc func(ctx context.Context) (string, error)
	URLFunc   func() string
}

// Fetch implements the Source interface
func (m *MockSource) Fetch(ctx context.Context) (string, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return "", nil
}

// URL implements the Source interface
func (m *MockSource) URL() string {
	if m.URLFunc != nil {
		return m.URLFunc()
	}
	return "mock://markets"
}

// NewMockSource creates a simple mock source with a predefined page or error
func NewMockSource(html string, err error) fetcher.Source {
	return &MockSource{
		FetchFunc: func(ctx context.Context) (string, error) {
			return html, err
		},
	}
}

// Row builds one listing row in the markup of the market page
func Row(name, price string) string {
	return `<a class="flex h-16 border-b" href="#"><p class="text-sm">` + name +
		`</p><p class="text-base">` + price + `</p></a>`
}

// Page wraps rows into a minimal listing page
func Page(rows ...string) string {
	html := `<!DOCTYPE html><html><body><div class="markets">`
	for _, row := range rows {
		html += row
	}
	return html + `</div></body></html>`
}
