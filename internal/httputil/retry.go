// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for the harvester.
package httputil

import (
	"context"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff when a
// throttled response carries no Retry-After header. Tests override this to
// avoid real sleeps.
var RetryBaseDelay = 30 * time.Second

const defaultMaxRetries = 5

// throttled reports whether the status code asks the client to slow down.
// The arXiv OAI endpoint signals throttling with 503; 429 is handled for
// completeness.
func throttled(code int) bool {
	return code == http.StatusServiceUnavailable || code == http.StatusTooManyRequests
}

// DoWithRetry executes an HTTP request and retries on throttling responses
// (HTTP 503 or 429). The wait honors the response's Retry-After header when
// present; otherwise it falls back to exponential backoff starting at
// baseDelay and doubling each attempt.
//
// When maxRetries is 0 the default (5) is used; when baseDelay is 0 the
// package-level RetryBaseDelay applies. On each throttled response the body
// is drained and closed before sleeping. If the context is cancelled during
// a backoff wait the function returns ctx.Err(). After exhausting retries
// the last throttled response is returned so the caller can inspect it.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int, baseDelay time.Duration) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if baseDelay <= 0 {
		baseDelay = RetryBaseDelay
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if !throttled(resp.StatusCode) {
			return resp, nil
		}

		// Exhausted retries — return the throttled response as-is.
		if attempt >= maxRetries {
			return resp, nil
		}

		wait, ok := retryAfter(resp)
		if !ok {
			wait = time.Duration(math.Pow(2, float64(attempt))) * baseDelay
		}

		// Drain and close the body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

// retryAfter parses the Retry-After header as a second count. ok is false
// when the header is absent or not a non-negative integer; the HTTP-date
// form is rare enough on OAI endpoints that it falls through to the
// backoff default.
func retryAfter(resp *http.Response) (wait time.Duration, ok bool) {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}
