package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// UpstreamErrorResponse mirrors the flat {"error": "..."} body returned by
// the Ollama-style generation backend on failure. It is used to parse
// structured error bodies from upstream HTTP calls.
type UpstreamErrorResponse struct {
	Error string `json:"error"`
}

// ParseResponseError reads the body of a non-2xx HTTP response and translates
// it into an error that carries the upstream message. If the response body
// matches the {"error": "..."} format, the message is preserved. Otherwise a
// generic error is returned with the status code and raw body.
//
// The caller should only invoke this when resp.StatusCode indicates an error
// (i.e., not 2xx). The response body is fully consumed and closed.
func ParseResponseError(resp *http.Response, serviceName string) error {
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB limit
	if err != nil {
		return fmt.Errorf("%s returned status %d (failed to read body: %w)", serviceName, resp.StatusCode, err)
	}

	// Try to parse structured error response.
	var upstream UpstreamErrorResponse
	if json.Unmarshal(bodyBytes, &upstream) == nil && upstream.Error != "" {
		return fmt.Errorf("%s returned status %d: %s", serviceName, resp.StatusCode, upstream.Error)
	}

	// Fallback: unstructured error body.
	return fmt.Errorf("%s returned status %d: %s", serviceName, resp.StatusCode, string(bodyBytes))
}

// IsClientError returns true if the HTTP status code is a 4xx client error.
// Client errors (e.g., an unknown model name) are not retryable, unlike
// transient 5xx failures.
func IsClientError(status int) bool {
	return status >= 400 && status < 500
}
