package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Generate("user-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenExpiry(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.Generate("user-123")
	assert.NoError(t, err)

	_, err = NewTokenService("test-secret", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).Generate("user-123")
	assert.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenGarbage(t *testing.T) {
	_, err := NewTokenService("test-secret", time.Hour).Validate("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
