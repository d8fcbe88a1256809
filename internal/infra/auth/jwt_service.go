// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"portfolio/config"
	"portfolio/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are signed with HS256; the signing secret comes from the process
// configuration and never changes at runtime.
type jwtService struct {
	secret     string
	defaultTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	defaultTTL := 15 * time.Minute
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		defaultTTL = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		secret:     cfg.SecretKey.Access,
		defaultTTL: defaultTTL,
	}, nil
}

// Issue creates a signed token embedding the subject, the numeric account
// id and an expiry of now+ttl.
func (s *jwtService) Issue(subject string, accountID int64, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := time.Now()
	claims := &service.Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Verify checks the token's signature, algorithm and expiry and returns the
// decoded claims. The signing method is pinned to HMAC so a token signed
// with a different algorithm never reaches signature verification.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrExpiredToken
		}

		return nil, service.ErrInvalidToken
	}
	if !token.Valid {
		return nil, service.ErrInvalidToken
	}

	return claims, nil
}
