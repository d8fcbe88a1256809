package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"portfolio/config"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	aboutRepo    *fakeAboutRepo
	hasher       *fakeHasher
	tokenService *fakeTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	aboutRepo := newFakeAboutRepo()
	hasher := &fakeHasher{}
	tokenService := &fakeTokenService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAuthService(AuthServiceParams{
		AboutRepo:    aboutRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config: &config.Config{
			Auth: &config.AuthConfig{LoginTokenTTL: 600 * time.Minute},
		},
		Logger: logger,
	})

	return authServiceFixtures{
		service:      svc,
		aboutRepo:    aboutRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func seedAccount(t *testing.T, repo *fakeAboutRepo) *entity.About {
	t.Helper()

	account := &entity.About{
		Firstname:    "Ada",
		Lastname:     "Lovelace",
		Name:         "ada",
		Email:        "ada@example.com",
		PasswordHash: "hashed:secret",
	}
	require.NoError(t, repo.Create(context.Background(), account))

	return account
}

func TestAuthService_Login_ByName(t *testing.T) {
	fx := createTestAuthService(t)
	account := seedAccount(t, fx.aboutRepo)

	output, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Username: "ada",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-for-ada", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, account.ID, output.User.ID)
	assert.Equal(t, "ada", output.User.Username)
	assert.Equal(t, "ada@example.com", output.User.Email)
	assert.Equal(t, "admin", output.User.Role)
	assert.Equal(t, 600*time.Minute, fx.tokenService.issuedTTL)
}

func TestAuthService_Login_ByEmail(t *testing.T) {
	fx := createTestAuthService(t)
	seedAccount(t, fx.aboutRepo)

	output, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Username: "ada@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "ada", output.User.Username)
}

func TestAuthService_Login_UnknownIdentifier(t *testing.T) {
	fx := createTestAuthService(t)
	seedAccount(t, fx.aboutRepo)

	output, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Username: "nobody",
		Password: "secret",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	seedAccount(t, fx.aboutRepo)

	output, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Username: "ada",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	// The error must be indistinguishable from the unknown-identifier case.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_CurrentAccount(t *testing.T) {
	fx := createTestAuthService(t)
	account := seedAccount(t, fx.aboutRepo)
	fx.tokenService.verifyClaims = &service.Claims{
		AccountID:        account.ID,
		RegisteredClaims: jwt.RegisteredClaims{Subject: account.Name},
	}

	got, err := fx.service.CurrentAccount(context.Background(), "some-token")

	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	assert.Equal(t, "ada", got.Name)
}

func TestAuthService_CurrentAccount_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)
	seedAccount(t, fx.aboutRepo)
	fx.tokenService.verifyErr = service.ErrInvalidToken

	got, err := fx.service.CurrentAccount(context.Background(), "garbage")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_CurrentAccount_MissingSubject(t *testing.T) {
	fx := createTestAuthService(t)
	account := seedAccount(t, fx.aboutRepo)
	// Well-signed token that carries an account id but no subject.
	fx.tokenService.verifyClaims = &service.Claims{AccountID: account.ID}

	got, err := fx.service.CurrentAccount(context.Background(), "sub-less-token")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_CurrentAccount_MissingAccountID(t *testing.T) {
	fx := createTestAuthService(t)
	account := seedAccount(t, fx.aboutRepo)
	fx.tokenService.verifyClaims = &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: account.Name},
	}

	got, err := fx.service.CurrentAccount(context.Background(), "id-less-token")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_CurrentAccount_DeletedAccount(t *testing.T) {
	fx := createTestAuthService(t)
	fx.tokenService.verifyClaims = &service.Claims{
		AccountID:        99,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "ghost"},
	}

	got, err := fx.service.CurrentAccount(context.Background(), "orphan-token")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
