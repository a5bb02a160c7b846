package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	provider := NewJwtProvider("test-secret-key-at-least-32-chars!!", time.Hour)

	token, err := provider.Generate(42, "reader@bookmore.site")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := provider.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "reader@bookmore.site", claims.Email)
}

func TestVerifyExpiredToken(t *testing.T) {
	provider := NewJwtProvider("test-secret-key-at-least-32-chars!!", -time.Minute)

	token, err := provider.Generate(1, "reader@bookmore.site")
	require.NoError(t, err)

	_, err = provider.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	provider := NewJwtProvider("test-secret-key-at-least-32-chars!!", time.Hour)
	other := NewJwtProvider("another-secret-key-at-least-32-ch!!", time.Hour)

	token, err := provider.Generate(1, "reader@bookmore.site")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	provider := NewJwtProvider("test-secret-key-at-least-32-chars!!", time.Hour)

	_, err := provider.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.NoError(t, VerifyPassword(hash, "hunter22"))
	assert.Error(t, VerifyPassword(hash, "hunter23"))
}
