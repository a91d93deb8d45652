package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"stealthcompany.com/riskassess/internal/metrics"
)

// Policy controls the retry behavior of a Fetcher.
type Policy struct {
	// MaxAttempts is the total number of HTTP attempts per call, not the
	// number of re-tries: an endpoint that never recovers is hit exactly
	// MaxAttempts times.
	MaxAttempts int
	// BaseDelay seeds the exponential backoff: attempt n waits
	// BaseDelay * 2^n plus jitter.
	BaseDelay time.Duration
	// MaxJitter bounds the random jitter added to every wait, so that
	// callers sharing a rate limit don't retry in lockstep.
	MaxJitter time.Duration
}

// Fetcher issues HTTP requests and transparently retries transient failures:
// transport errors and the retryable statuses 429, 500 and 503. Any other
// response is returned as-is for the caller to judge.
type Fetcher struct {
	httpClient *http.Client
	apiKey     string
	policy     Policy
}

// NewFetcher creates a Fetcher with the given credential and retry policy.
func NewFetcher(apiKey string, timeout time.Duration, policy Policy) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey: apiKey,
		policy: policy,
	}
}

// Do issues method/url with the static credential header, retrying under the
// policy. Backoff waits are serialized: no request goes out while a wait is
// pending. On exhaustion it returns a RetryExhaustedError; a cancelled
// context aborts immediately with the context error.
func (f *Fetcher) Do(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	var lastStatus int
	var lastErr error

	for attempt := 0; attempt < f.policy.MaxAttempts; attempt++ {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("x-api-key", f.apiKey)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		start := time.Now()
		resp, err := f.httpClient.Do(req)
		duration := time.Since(start)

		if err != nil {
			metrics.RecordHTTPAttempt(method, "error")
			metrics.RecordHTTPAttemptDuration(method, duration)

			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			lastErr = err
			lastStatus = 0
			if attempt == f.policy.MaxAttempts-1 {
				break
			}

			delay := f.backoffDelay(attempt)
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Dur("delay", delay).
				Str("url", url).
				Msg("Transport error, retrying")
			metrics.RecordRetry("transport")

			if err := sleep(ctx, delay); err != nil {
				return nil, err
			}
			continue
		}

		if !isRetryableStatus(resp.StatusCode) {
			metrics.RecordHTTPAttempt(method, "success")
			metrics.RecordHTTPAttemptDuration(method, duration)
			return resp, nil
		}

		metrics.RecordHTTPAttempt(method, "retryable")
		metrics.RecordHTTPAttemptDuration(method, duration)

		retryAfter, hasHint := parseRetryAfter(resp.Header.Get("Retry-After"))
		resp.Body.Close()

		lastStatus = resp.StatusCode
		lastErr = nil
		if attempt == f.policy.MaxAttempts-1 {
			break
		}

		var delay time.Duration
		if hasHint {
			delay = retryAfter + f.jitter()
		} else {
			delay = f.backoffDelay(attempt)
		}
		log.Warn().
			Int("status", resp.StatusCode).
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Str("url", url).
			Msg("Retryable status, backing off")
		metrics.RecordRetry(strconv.Itoa(resp.StatusCode))

		if err := sleep(ctx, delay); err != nil {
			return nil, err
		}
	}

	if lastErr != nil {
		return nil, &RetryExhaustedError{Attempts: f.policy.MaxAttempts, Err: lastErr}
	}
	return nil, &RetryExhaustedError{Attempts: f.policy.MaxAttempts, Status: lastStatus}
}

// backoffDelay computes the exponential wait for the given zero-based attempt.
func (f *Fetcher) backoffDelay(attempt int) time.Duration {
	return f.policy.BaseDelay*time.Duration(1<<attempt) + f.jitter()
}

func (f *Fetcher) jitter() time.Duration {
	if f.policy.MaxJitter <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(f.policy.MaxJitter)))
}

// isRetryableStatus reports whether a status is treated as transient. Other
// 4xx/5xx are deliberately not retried.
func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusServiceUnavailable:
		return true
	default:
		return false
	}
}

// parseRetryAfter reads a Retry-After value as a non-negative number of
// seconds. Anything unparsable falls back to exponential backoff.
func parseRetryAfter(value string) (time.Duration, bool) {
	if value == "" {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil || seconds < 0 {
		return 0, false
	}
	return time.Duration(seconds * float64(time.Second)), true
}

// sleep waits for the given delay or until the context is cancelled.
func sleep(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
