// Package upstream holds error types shared by the outbound HTTP clients.
package upstream

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// MaxErrorBodyBytes caps how much of an upstream error body is captured.
const MaxErrorBodyBytes = 8 << 10

// StatusError is a 4xx/5xx response from an upstream API. Body carries a
// capped snippet of the response for diagnostics.
type StatusError struct {
	Upstream   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if strings.TrimSpace(e.Body) == "" {
		return fmt.Sprintf("%s: HTTP %d: no response body", e.Upstream, e.StatusCode)
	}
	return fmt.Sprintf("%s: HTTP %d: %s", e.Upstream, e.StatusCode, e.Body)
}

// NewStatusError drains a capped snippet of resp.Body into a StatusError.
// The caller keeps ownership of the body.
func NewStatusError(upstream string, resp *http.Response) *StatusError {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, MaxErrorBodyBytes))
	return &StatusError{
		Upstream:   upstream,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(snippet)),
	}
}
