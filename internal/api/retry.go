package api

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// doRetry wraps do with retry for transient failures. Fire-and-forget
// calls never go through here: they are at-most-once by design.
func (c *HTTPClient) doRetry(ctx context.Context, method, path string, body, out any) error {
	var lastErr error

	for attempt := range c.retry.MaxAttempts {
		err := c.do(ctx, method, path, body, out, false)
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable(err) {
			return err
		}

		// Last attempt: don't sleep, just return the error.
		if attempt == c.retry.MaxAttempts-1 {
			break
		}

		wait := c.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return lastErr
}

// retryable determines if an error is worth another attempt.
func retryable(err error) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var notFound *ErrNotFound
	if errors.As(err, &notFound) {
		return false
	}
	var unauth *ErrUnauthorized
	if errors.As(err, &unauth) {
		return false
	}
	var bad *ErrBadResponse
	if errors.As(err, &bad) {
		return false
	}

	// Rate limits and 5xx/network failures are transient.
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	var unavail *ErrUnavailable
	if errors.As(err, &unavail) {
		return true
	}

	return false
}

// backoff computes the wait duration for the given attempt.
func (c *HTTPClient) backoff(attempt int, err error) time.Duration {
	// Respect Retry-After for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(c.retry.InitialWait) * math.Pow(c.retry.Multiplier, float64(attempt))
	if wait > float64(c.retry.MaxWait) {
		wait = float64(c.retry.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
