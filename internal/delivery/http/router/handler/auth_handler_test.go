package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/delivery/http/validator"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthUsecase struct {
	loginOut   *usecase.LoginOutput
	loginErr   error
	account    *entity.About
	accountErr error

	seenToken string
}

func (f *fakeAuthUsecase) Login(_ context.Context, _ usecase.LoginInput) (*usecase.LoginOutput, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}

	return f.loginOut, nil
}

func (f *fakeAuthUsecase) CurrentAccount(_ context.Context, token string) (*entity.About, error) {
	f.seenToken = token
	if f.accountErr != nil {
		return nil, f.accountErr
	}

	return f.account, nil
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func loginForm(username, password string) *http.Request {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return req
}

func TestAuthHandler_Login_Success(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := &fakeAuthUsecase{
		loginOut: &usecase.LoginOutput{
			AccessToken: "signed-token",
			TokenType:   "bearer",
			User: usecase.AccountInfo{
				ID:       1,
				Username: "ada",
				Email:    "ada@example.com",
				Role:     "admin",
			},
		},
	}

	e := newTestEcho(t)
	e.POST("/auth/login", NewAuthHandler(uc, logger).Login)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, loginForm("ada", "secret"))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
			User        struct {
				Username string `json:"username"`
				Role     string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "signed-token", body.Data.AccessToken)
	assert.Equal(t, "bearer", body.Data.TokenType)
	assert.Equal(t, "ada", body.Data.User.Username)
	assert.Equal(t, "admin", body.Data.User.Role)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := &fakeAuthUsecase{
		loginErr: domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch"),
	}

	e := newTestEcho(t)
	e.POST("/auth/login", NewAuthHandler(uc, logger).Login)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, loginForm("ada", "wrong"))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	assert.Contains(t, rec.Body.String(), "Incorrect username or password")
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := &fakeAuthUsecase{}

	e := newTestEcho(t)
	e.POST("/auth/login", NewAuthHandler(uc, logger).Login)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, loginForm("", ""))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}
