package auth

import (
	"testing"
	"time"

	"github.com/bondtrack/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T, mutate func(*config.JWTConfig)) *JWTService {
	t.Helper()
	cfg := config.JWTConfig{
		Secret:                 "test-secret-that-is-long-enough-123",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "bondtrack-test",
		MaxRefreshCount:        3,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return NewJWTService(cfg)
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testService(t, nil)
	userID := uuid.New()
	tenantID := uuid.New()

	t.Run("access token carries user and tenant claims", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(GenerateTokenInput{
			UserID:   userID,
			Username: "agent",
			TenantID: &tenantID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Bearer", pair.TokenType)

		claims, err := svc.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "agent", claims.Username)

		tid, ok := claims.GetTenantUUID()
		require.True(t, ok)
		assert.Equal(t, tenantID, tid)
	})

	t.Run("tenantless user gets a token without a tenant claim", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: userID, Username: "drifter"})
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)

		_, ok := claims.GetTenantUUID()
		assert.False(t, ok)
	})

	t.Run("refresh token is not accepted as an access token", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: userID, Username: "agent"})
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(pair.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tokens signed with another secret are rejected", func(t *testing.T) {
		other := testService(t, func(cfg *config.JWTConfig) { cfg.Secret = "a-completely-different-secret-456" })
		pair, err := other.GenerateTokenPair(GenerateTokenInput{UserID: userID, Username: "agent"})
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := testService(t, func(cfg *config.JWTConfig) { cfg.AccessTokenExpiration = -time.Minute })
		pair, err := expired.GenerateTokenPair(GenerateTokenInput{UserID: userID, Username: "agent"})
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestRefreshTokenPair(t *testing.T) {
	userID := uuid.New()
	tenantID := uuid.New()

	t.Run("refresh preserves the tenant claim and counts uses", func(t *testing.T) {
		svc := testService(t, nil)
		pair, err := svc.GenerateTokenPair(GenerateTokenInput{
			UserID:   userID,
			Username: "agent",
			TenantID: &tenantID,
		})
		require.NoError(t, err)

		fresh, err := svc.RefreshTokenPair(pair.RefreshToken)
		require.NoError(t, err)

		claims, err := svc.ValidateRefreshToken(fresh.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, 1, claims.RefreshCount)

		tid, ok := claims.GetTenantUUID()
		require.True(t, ok)
		assert.Equal(t, tenantID, tid)
	})

	t.Run("refresh chain stops at the configured limit", func(t *testing.T) {
		svc := testService(t, func(cfg *config.JWTConfig) { cfg.MaxRefreshCount = 2 })
		pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: userID, Username: "agent"})
		require.NoError(t, err)

		first, err := svc.RefreshTokenPair(pair.RefreshToken)
		require.NoError(t, err)
		second, err := svc.RefreshTokenPair(first.RefreshToken)
		require.NoError(t, err)

		_, err = svc.RefreshTokenPair(second.RefreshToken)
		assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
	})

	t.Run("access token cannot be used to refresh", func(t *testing.T) {
		svc := testService(t, nil)
		pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: userID, Username: "agent"})
		require.NoError(t, err)

		_, err = svc.RefreshTokenPair(pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})
}
