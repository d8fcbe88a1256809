package auth

import (
	"testing"
	"time"

	"portfolio/config"
	"portfolio/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 15 * time.Minute}

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := svc.Issue("admin", 42, 600*time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, int64(42), claims.AccountID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	// A non-positive ttl falls back to the configured 15 minute default.
	token, err := svc.Issue("admin", 1, 0)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 14*time.Minute)
	assert.LessOrEqual(t, remaining, 15*time.Minute)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := svc.Issue("admin", 1, time.Millisecond)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrExpiredToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestTokenConfig("secret_one_very_long_for_testing_purposes"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestTokenConfig("secret_two_very_long_for_testing_purposes"))
	require.NoError(t, err)

	token, err := issuer.Issue("admin", 1, time.Hour)
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_AlgorithmMismatch(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	// A token signed with "none" must be rejected before signature
	// verification, regardless of its claims.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "admin",
		"id":  1,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.Verify(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	for _, garbled := range []string{"", "clearly-not-a-jwt", "a.b.c"} {
		claims, err := svc.Verify(garbled)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
}
