package fetcher

import (
	"fmt"
)

// ErrorType represents the category of error that occurred while fetching the listing page
type ErrorType string

const (
	// ErrorTypeNetwork indicates a network-level error (connection refused, DNS, etc.)
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeTimeout indicates the request timed out or its context was cancelled
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeContent indicates the response body is not text
	ErrorTypeContent ErrorType = "content"
)

// FetchError represents a structured error from a fetch operation
type FetchError struct {
	Type    ErrorType
	URL     string
	Message string
	Cause   error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error fetching %s: %s: %v", e.Type, e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error fetching %s: %s", e.Type, e.URL, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// NewNetworkError creates a network error
func NewNetworkError(url string, cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeNetwork,
		URL:     url,
		Message: "network request failed",
		Cause:   cause,
	}
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(url string, cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeTimeout,
		URL:     url,
		Message: "request timed out",
		Cause:   cause,
	}
}

// NewContentError creates an error for a response that cannot be read as text
func NewContentError(url, contentType string) *FetchError {
	return &FetchError{
		Type:    ErrorTypeContent,
		URL:     url,
		Message: fmt.Sprintf("unexpected content type %q", contentType),
	}
}
