package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trivia-quiz-service/internal/auth"
)

const testSecret = "a-long-enough-test-secret-for-hs256"

func TestVerifierRoundTrip(t *testing.T) {
	v := auth.NewVerifier(testSecret, "https://id.example.com")

	token, err := v.Issue(auth.Identity{UserID: "user-123", Name: "Ada", Email: "ada@example.com"}, time.Minute)
	require.NoError(t, err)

	id, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id.UserID)
	assert.Equal(t, "Ada", id.Name)
	assert.Equal(t, "ada@example.com", id.Email)
	assert.False(t, id.Guest)
}

func TestVerifierRejects(t *testing.T) {
	v := auth.NewVerifier(testSecret, "https://id.example.com")

	t.Run("expired", func(t *testing.T) {
		token, err := v.Issue(auth.Identity{UserID: "u"}, -time.Minute)
		require.NoError(t, err)
		_, err = v.Verify(token)
		assert.True(t, errors.Is(err, jwt.ErrTokenExpired), "got %v", err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := auth.NewVerifier("another-secret-entirely-different", "https://id.example.com").
			Issue(auth.Identity{UserID: "u"}, time.Minute)
		require.NoError(t, err)
		_, err = v.Verify(token)
		assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid), "got %v", err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := auth.NewVerifier(testSecret, "https://evil.example.com").
			Issue(auth.Identity{UserID: "u"}, time.Minute)
		require.NoError(t, err)
		_, err = v.Verify(token)
		assert.True(t, errors.Is(err, jwt.ErrTokenInvalidIssuer), "got %v", err)
	})

	t.Run("missing subject", func(t *testing.T) {
		token, err := v.Issue(auth.Identity{}, time.Minute)
		require.NoError(t, err)
		_, err = v.Verify(token)
		assert.ErrorIs(t, err, auth.ErrMissingSubject)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify("not-a-jwt")
		assert.Error(t, err)
	})
}
