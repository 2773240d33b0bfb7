package gnews

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned by NewClient callers that validate configuration.
var ErrMissingAPIKey = errors.New("GNEWS_API_KEY environment variable is required. Get your free API key from https://gnews.io/")

// UpstreamError reports a non-200 response from the API.
type UpstreamError struct {
	StatusCode int
	// Errors is the provider's structured "errors" value when present.
	Errors json.RawMessage
	// Body is the raw (truncated) body when it was not JSON.
	Body string
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("GNews API error: %d", e.StatusCode)
	switch {
	case len(e.Errors) > 0:
		msg += " - " + string(e.Errors)
	case e.Body != "":
		msg += " - " + e.Body
	}
	return msg
}

// NetworkError reports a transport-level failure reaching the API.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("Network error connecting to GNews API: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
