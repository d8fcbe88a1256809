// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the credentials posted by the login form. Username
// accepts either the account name or its email address.
type LoginInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// --- Output DTOs ---

// AccountInfo is the public projection of the authenticated account.
type AccountInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginOutput returns the bearer token after a successful login.
type LoginOutput struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        AccountInfo `json:"user"`
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (handlers and the auth
// middleware) depends on.
type AuthUsecase interface {
	// Login verifies the credentials against the stored account and
	// returns a signed bearer token.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// CurrentAccount resolves a bearer token to the account it was
	// issued for. Invalid, expired, or orphaned tokens all map to the
	// same unauthorized error.
	CurrentAccount(ctx context.Context, token string) (*entity.About, error)
}
