package api

import (
	"fmt"
	"time"
)

// ErrNotFound indicates the test or session does not exist or has
// expired. Fatal for the session; there is no retry path.
type ErrNotFound struct {
	Resource string
	Err      error
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found or expired: %v", e.Resource, e.Err)
}

func (e *ErrNotFound) Unwrap() error { return e.Err }

// ErrUnauthorized indicates a missing, invalid, or expired identity.
type ErrUnauthorized struct {
	Err error
}

func (e *ErrUnauthorized) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("not authorized: %v", e.Err)
	}
	return "not authorized"
}

func (e *ErrUnauthorized) Unwrap() error { return e.Err }

// ErrRateLimit indicates the server returned 429.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrUnavailable indicates the server is down, unreachable, or
// answered with a 5xx. Transient; safe to retry.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("assessment service unavailable: %v", e.Err)
	}
	return "assessment service unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrBadResponse indicates a 2xx body that could not be decoded.
type ErrBadResponse struct {
	Err error
}

func (e *ErrBadResponse) Error() string {
	return fmt.Sprintf("malformed server response: %v", e.Err)
}

func (e *ErrBadResponse) Unwrap() error { return e.Err }
