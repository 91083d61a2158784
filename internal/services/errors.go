package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAPIKey is returned before any network call when no generative
	// credential is configured.
	ErrNoAPIKey = errors.New("KIMI_API_KEY not set")

	// ErrUpstreamTimeout is returned when the generative API does not answer
	// within the operation's time ceiling.
	ErrUpstreamTimeout = errors.New("generative API request timed out")

	// ErrMalformedResponse is returned on a 2xx reply that lacks a first
	// choice message content.
	ErrMalformedResponse = errors.New("invalid API response format")
)

// ExtractionError reports a malformed source document.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from PDF: %s", e.Reason)
}

// UpstreamError reports a non-2xx reply from the generative API. Body holds a
// truncated preview of the raw response body.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("API Error %d: %s", e.Status, e.Body)
}

// RenderError reports a failure constructing the output document. It is
// terminal for the pipeline.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to convert text to PDF: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

const maxBodyPreview = 500

func previewBody(body string) string {
	if len(body) > maxBodyPreview {
		return body[:maxBodyPreview] + "..."
	}
	return body
}
