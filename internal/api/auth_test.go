package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty token is expired", func(t *testing.T) {
		assert.True(t, TokenExpired("", now))
	})

	t.Run("past exp is expired", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()})
		assert.True(t, TokenExpired(tok, now))
	})

	t.Run("future exp is live", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
		assert.False(t, TokenExpired(tok, now))
	})

	t.Run("no exp claim is live", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"sub": "student-1"})
		assert.False(t, TokenExpired(tok, now))
	})

	t.Run("opaque token is live", func(t *testing.T) {
		assert.False(t, TokenExpired("not-a-jwt", now))
	})
}

func TestTokenSubject(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"sub": "student-1"})
	sub, err := TokenSubject(tok)
	require.NoError(t, err)
	assert.Equal(t, "student-1", sub)

	_, err = TokenSubject("not-a-jwt")
	assert.Error(t, err)
}
