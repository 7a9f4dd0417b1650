// internal/adapters/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	a := NewAuthenticator("test-secret", time.Minute)

	token, err := a.CreateAccessToken("ada")
	require.NoError(t, err)

	data, err := a.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ada", data.Username)
	assert.True(t, a.ValidateToken(token))
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	token, err := NewAuthenticator("secret-one", time.Minute).CreateAccessToken("ada")
	require.NoError(t, err)

	other := NewAuthenticator("secret-two", time.Minute)
	_, err = other.DecodeToken(token)
	assert.Error(t, err)
	assert.False(t, other.ValidateToken(token))
}

func TestDecodeRejectsExpiredToken(t *testing.T) {
	a := NewAuthenticator("test-secret", -time.Minute)
	token, err := a.CreateAccessToken("ada")
	require.NoError(t, err)

	_, err = a.DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	a := NewAuthenticator("test-secret", time.Minute)
	_, err := a.DecodeToken("not-a-token")
	assert.Error(t, err)
	assert.False(t, a.ValidateToken("not-a-token"))
}

func TestPasswordHashing(t *testing.T) {
	a := NewAuthenticator("test-secret", time.Minute)

	hashed, err := a.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hashed)
	assert.True(t, a.VerifyPassword("hunter22", hashed))
	assert.False(t, a.VerifyPassword("hunter23", hashed))
}
