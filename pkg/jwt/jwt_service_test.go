package jwt

import (
	"testing"

	"cooknextdoor/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService("")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestTokenRoundTrip(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	token, err := svc.GenerateTokenUser("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenSignedWithDifferentSecretRejected(t *testing.T) {
	issuer, err := NewJWTService("secret-a")
	require.NoError(t, err)
	verifier, err := NewJWTService("secret-b")
	require.NoError(t, err)

	token, err := issuer.GenerateTokenUser("user-123")
	require.NoError(t, err)

	_, err = verifier.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGarbageTokenRejected(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	_, err = svc.GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
