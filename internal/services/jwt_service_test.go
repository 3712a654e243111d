package services

import (
	"testing"
	"time"

	"blog-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-that-is-long-enough-0000")

	svc := NewJWTService()
	user := models.User{ID: uuid.New()}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateTokenFailures(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-that-is-long-enough-0000")

	svc := NewJWTService()
	user := models.User{ID: uuid.New()}

	t.Run("malformed", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-jwt")
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired := &JWTService{
			tokenExpiry: -time.Minute,
			secretKey:   svc.secretKey,
		}
		token, err := expired.GenerateToken(user)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong key", func(t *testing.T) {
		other := &JWTService{
			tokenExpiry: time.Hour,
			secretKey:   []byte("a-completely-different-signing-key-111"),
		}
		token, err := other.GenerateToken(user)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})
}
