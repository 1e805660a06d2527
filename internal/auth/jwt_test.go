package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightflow/booking-api/internal/auth"
	"github.com/freightflow/booking-api/internal/config"
)

func newValidator(ttl int) *auth.JWTValidator {
	return auth.NewJWTValidator(&config.AuthConfig{
		Enabled:   true,
		JWTSecret: "test-signing-secret",
		Issuer:    "booking-api-tests",
		Audience:  "booking-api",
		TokenTTL:  ttl,
	})
}

func TestIssueAndValidateToken(t *testing.T) {
	v := newValidator(3600)

	token, err := v.IssueToken("user-42", "Priya Nair", "priya@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := v.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", user.Subject)
	assert.Equal(t, "Priya Nair", user.Name)
	assert.Equal(t, "priya@example.com", user.Email)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := newValidator(3600).IssueToken("user-42", "", "")
	require.NoError(t, err)

	other := auth.NewJWTValidator(&config.AuthConfig{
		JWTSecret: "a-different-secret",
		Issuer:    "booking-api-tests",
		Audience:  "booking-api",
	})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	v := newValidator(-60)

	token, err := v.IssueToken("user-42", "", "")
	require.NoError(t, err)

	_, err = v.ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	minted := auth.NewJWTValidator(&config.AuthConfig{
		JWTSecret: "test-signing-secret",
		Issuer:    "someone-else",
		Audience:  "booking-api",
		TokenTTL:  3600,
	})
	token, err := minted.IssueToken("user-42", "", "")
	require.NoError(t, err)

	_, err = newValidator(3600).ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := newValidator(3600).ValidateToken("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
