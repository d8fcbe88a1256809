package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures. ErrExpiredToken is reported only for a
// structurally valid, correctly signed token that is past its expiry;
// everything else is ErrInvalidToken.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims carries the identity embedded in a bearer token: the account
// name as subject plus the numeric account id.
type Claims struct {
	AccountID int64 `json:"id"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed token for the given subject and account id.
	// A non-positive ttl falls back to the service's default lifetime.
	Issue(subject string, accountID int64, ttl time.Duration) (string, error)

	// Verify checks the token's signature, algorithm and expiry and
	// returns the decoded claims.
	Verify(token string) (*Claims, error)
}
