package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrine-app/storefront/config"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "anything"))
}

func TestJWTRoundTrip(t *testing.T) {
	m, err := NewJWTManager(&config.JWTConfig{SecretKey: "test-secret", LifetimeHours: 1})
	require.NoError(t, err)

	token, err := m.GenerateToken(42)
	require.NoError(t, err)

	userID, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestJWTRejectsGarbage(t *testing.T) {
	m, err := NewJWTManager(&config.JWTConfig{SecretKey: "test-secret", LifetimeHours: 1})
	require.NoError(t, err)

	for _, token := range []string{"", "nonsense", "a.b.c"} {
		_, err := m.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTManager(&config.JWTConfig{SecretKey: "secret-a", LifetimeHours: 1})
	require.NoError(t, err)
	verifier, err := NewJWTManager(&config.JWTConfig{SecretKey: "secret-b", LifetimeHours: 1})
	require.NoError(t, err)

	token, err := issuer.GenerateToken(7)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTRejectsExpired(t *testing.T) {
	m := &JWTManager{secret: []byte("test-secret"), lifetime: -time.Minute}

	token, err := m.GenerateToken(7)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTRequiresSecret(t *testing.T) {
	_, err := NewJWTManager(&config.JWTConfig{SecretKey: "", LifetimeHours: 1})
	assert.Error(t, err)
}
