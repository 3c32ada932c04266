package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/loftlabs/loft-backend/internal/config"
	"github.com/loftlabs/loft-backend/internal/dto"
	"github.com/loftlabs/loft-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidation(t *testing.T) {
	// Validation happens before any query, so no database is needed.
	s := NewAuthService(nil, &config.Config{JWTSecret: "secret"})

	t.Run("password too short", func(t *testing.T) {
		_, err := s.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "short"})
		assert.Error(t, err)
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := s.Register(&dto.RegisterRequest{Password: "long-enough-password"})
		assert.Error(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := s.Register(&dto.RegisterRequest{
			Email:    "a@example.com",
			Password: "long-enough-password",
			Role:     "SUPERUSER",
		})
		assert.Error(t, err)
	})
}

func TestGenerateAccessTokenClaims(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret", JWTAccessExpiry: 15 * time.Minute}
	s := NewAuthService(nil, cfg)

	user := &models.User{ID: uuid.New(), Email: "vol@example.com"}
	profile := &models.Profile{UserID: user.ID, Role: models.RoleVolunteer}

	signed, err := s.generateAccessToken(user, profile)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, "vol@example.com", claims["email"])
	assert.Equal(t, models.RoleVolunteer, claims["role"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(cfg.JWTAccessExpiry), exp.Time, time.Minute)
}

func TestHashTokenIsStableAndHex(t *testing.T) {
	h1 := hashToken("refresh-token-value")
	h2 := hashToken("refresh-token-value")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.NotEqual(t, h1, hashToken("different"))
}
