package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	ts := NewTokenService("test-secret", 30*24*time.Hour)

	token, err := ts.GenerateToken("user@example.com", false)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := ts.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", identity.Email)
	assert.False(t, identity.IsAdmin)
}

func TestTokenCarriesAdminFlag(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	token, err := ts.GenerateToken("admin@example.com", true)
	assert.NoError(t, err)

	identity, err := ts.ValidateToken(token)
	assert.NoError(t, err)
	assert.True(t, identity.IsAdmin)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.GenerateToken("user@example.com", false)
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	ts := NewTokenService("test-secret", -time.Minute)

	token, err := ts.GenerateToken("user@example.com", false)
	assert.NoError(t, err)

	_, err = ts.ValidateToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	_, err := ts.ValidateToken("not-a-token")
	assert.Error(t, err)
}
