package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthUsecase struct {
	account    *entity.About
	accountErr error
	seenToken  string
}

func (s *stubAuthUsecase) Login(context.Context, usecase.LoginInput) (*usecase.LoginOutput, error) {
	return nil, nil
}

func (s *stubAuthUsecase) CurrentAccount(_ context.Context, token string) (*entity.About, error) {
	s.seenToken = token
	if s.accountErr != nil {
		return nil, s.accountErr
	}

	return s.account, nil
}

func newProtectedServer(t *testing.T, uc usecase.AuthUsecase) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	protected := func(c echo.Context) error {
		account := AccountFromContext(c)
		require.NotNil(t, account)

		return c.NoContent(http.StatusNoContent)
	}
	e.POST("/protected", protected, NewAuthMiddleware(uc).Authenticate)

	return e
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	uc := &stubAuthUsecase{account: &entity.About{ID: 1, Name: "ada"}}
	e := newProtectedServer(t, uc)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer valid-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "valid-token", uc.seenToken)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := newProtectedServer(t, &stubAuthUsecase{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/protected", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	assert.Contains(t, rec.Body.String(), "Could not validate credentials")
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	e := newProtectedServer(t, &stubAuthUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	uc := &stubAuthUsecase{accountErr: domainerrors.ErrUnauthorized.WrapMessage("token verification failed")}
	e := newProtectedServer(t, uc)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer expired-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}
