package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "testuser")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
	assert.Equal(t, "smartresume-api", claims.Issuer)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, err := svc.GenerateToken(uuid.New(), "testuser")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := NewJWTService("secret-a", time.Minute)
	other := NewJWTService("secret-b", time.Minute)

	token, err := svc.GenerateToken(uuid.New(), "testuser")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Testpass123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("Testpass123", hash))
	assert.False(t, CheckPasswordHash("wrongpass", hash))
}
