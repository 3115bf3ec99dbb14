package auth

import (
	"testing"
	"time"

	"github.com/cityinfo/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, ttl time.Duration) *Manager {
	t.Helper()

	manager, err := NewManager(config.JWTConfig{
		SigningKey:     "test-signing-key",
		AccessTokenTTL: ttl,
	})
	require.NoError(t, err)

	return manager
}

func TestNewManagerRejectsEmptyConfig(t *testing.T) {
	_, err := NewManager(config.JWTConfig{AccessTokenTTL: time.Minute})
	require.Error(t, err)

	_, err = NewManager(config.JWTConfig{SigningKey: "key"})
	require.Error(t, err)
}

func TestJWTRoundTripCarriesCityClaim(t *testing.T) {
	manager := newTestManager(t, time.Minute)

	token, ttl, err := manager.NewJWT("user-1", "Antwerp")
	require.NoError(t, err)
	require.Equal(t, time.Minute, ttl)

	claims, err := manager.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "Antwerp", claims.City)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	manager := newTestManager(t, -time.Minute)

	token, _, err := manager.NewJWT("user-1", "Antwerp")
	require.NoError(t, err)

	_, err = manager.Parse(token)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	manager := newTestManager(t, time.Minute)

	other, err := NewManager(config.JWTConfig{
		SigningKey:     "another-key",
		AccessTokenTTL: time.Minute,
	})
	require.NoError(t, err)

	token, _, err := other.NewJWT("user-1", "Antwerp")
	require.NoError(t, err)

	_, err = manager.Parse(token)
	require.Error(t, err)
}
