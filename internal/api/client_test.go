package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.Retry = RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
	return NewClient(cfg)
}

func TestGetConfigDecodesResponse(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tests/tok-1/config", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title":"Algebra Midterm","timeLimitMinutes":45,"revealAnswers":true}`))
	}))

	cfg, err := c.GetConfig(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "Algebra Midterm", cfg.Title)
	assert.Equal(t, 45, cfg.TimeLimitMinutes)
	assert.True(t, cfg.RevealAnswers)
}

func TestBearerTokenHeader(t *testing.T) {
	var got string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	c.SetToken("abc123")

	_, err := c.GetConfig(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", got)
}

func TestStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{"unauthorized", http.StatusUnauthorized, func(t *testing.T, err error) {
			var e *ErrUnauthorized
			assert.True(t, errors.As(err, &e))
		}},
		{"forbidden", http.StatusForbidden, func(t *testing.T, err error) {
			var e *ErrUnauthorized
			assert.True(t, errors.As(err, &e))
		}},
		{"not found", http.StatusNotFound, func(t *testing.T, err error) {
			var e *ErrNotFound
			assert.True(t, errors.As(err, &e))
		}},
		{"gone", http.StatusGone, func(t *testing.T, err error) {
			var e *ErrNotFound
			assert.True(t, errors.As(err, &e))
		}},
		{"server error", http.StatusInternalServerError, func(t *testing.T, err error) {
			var e *ErrUnavailable
			assert.True(t, errors.As(err, &e))
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			_, err := c.Submit(context.Background(), "tok-1")
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestRetryOnServerError(t *testing.T) {
	var calls int
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"questions":[]}`))
	}))

	_, err := c.GetQuestions(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestNoRetryOnNotFound(t *testing.T) {
	var calls int
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.GetQuestions(context.Background(), "tok-1")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRateLimitCarriesRetryAfter(t *testing.T) {
	var calls int
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"scorePercentage":80}`))
	}))

	res, err := c.Submit(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 80.0, res.ScorePercentage)
}

func TestFireAndForgetDoesNotRetry(t *testing.T) {
	var calls int
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	err := c.UpdateState(context.Background(), "tok-1", 3)
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	err = c.ToggleFlag(context.Background(), "tok-1", "q-1")
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestBadBodyIsBadResponse(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title": not-json`))
	}))

	_, err := c.GetConfig(context.Background(), "tok-1")
	require.Error(t, err)
	var bad *ErrBadResponse
	assert.True(t, errors.As(err, &bad))
}

func TestLoginInstallsNothingAutomatically(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"token":"jwt-here"}`))
	}))

	tok, err := c.Login(context.Background(), Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-here", tok.Token)
	// The caller decides when to adopt the token.
	assert.Empty(t, c.Token())
}

func TestErrorMessageFromBody(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}))

	_, err := c.GetConfig(context.Background(), "tok-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token expired")
}
