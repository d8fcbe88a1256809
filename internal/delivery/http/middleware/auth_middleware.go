package middleware

import (
	"strings"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
)

// KeyAccount is the echo.Context key the authenticated account is
// stored under.
const KeyAccount = "account"

// AuthMiddleware guards write endpoints with bearer-token
// authentication. The token must resolve to the stored account.
type AuthMiddleware struct {
	authUc usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUc usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUc: authUc}
}

// Authenticate validates the bearer token and stores the resolved
// account on the context. Missing or malformed headers fail with the
// same unauthorized error as bad tokens.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is not a bearer token")
		}

		account, err := m.authUc.CurrentAccount(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		c.Set(KeyAccount, account)

		return next(c)
	}
}

// AccountFromContext returns the account stored by Authenticate, or nil
// outside an authenticated request.
func AccountFromContext(c echo.Context) *entity.About {
	if account, ok := c.Get(KeyAccount).(*entity.About); ok {
		return account
	}

	return nil
}
