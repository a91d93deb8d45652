package fetch

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// StatusError is a non-retryable HTTP response surfaced as a fatal error.
// It carries the status code and a snippet of the body for diagnostics.
type StatusError struct {
	StatusCode int
	Snippet    string
}

func (e *StatusError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Snippet)
}

// NewStatusError builds a StatusError from a response, consuming up to 512
// bytes of the body as a snippet. The caller still owns closing the body.
func NewStatusError(resp *http.Response) *StatusError {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{
		StatusCode: resp.StatusCode,
		Snippet:    strings.TrimSpace(string(snippet)),
	}
}

// RetryExhaustedError reports that the retry budget was spent without a
// usable response. Status holds the last retryable status code, or zero when
// the last attempt failed at the transport level, in which case Err holds
// the underlying transport error.
type RetryExhaustedError struct {
	Attempts int
	Status   int
	Err      error
}

func (e *RetryExhaustedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("exhausted %d attempts: %v", e.Attempts, e.Err)
	}
	return fmt.Sprintf("exhausted %d attempts, last status %d", e.Attempts, e.Status)
}

func (e *RetryExhaustedError) Unwrap() error {
	return e.Err
}
