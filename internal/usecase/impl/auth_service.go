// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"portfolio/config"
	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// roleAdmin is the only role the portfolio knows about. The single
// about record is the administrator.
const roleAdmin = "admin"

// authService implements the AuthUsecase interface.
type authService struct {
	aboutRepo    repository.AboutRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	authCfg      config.AuthConfig
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AboutRepo    repository.AboutRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	authCfg := config.AuthConfig{}
	if params.Config != nil && params.Config.Auth != nil {
		authCfg = *params.Config.Auth
	}

	return &authService{
		aboutRepo:    params.AboutRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		authCfg:      authCfg,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the posted credentials and issues a bearer token. The
// identifier matches either the account name or its email. Unknown
// identifiers and wrong passwords return the same error so the response
// never reveals which part was wrong.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.aboutRepo.FindByIdentifier(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAboutNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown identifier", slog.String("identifier", input.Username))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("account lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Int64("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.Issue(account.Name, account.ID, srv.authCfg.LoginTokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("Login succeeded", slog.Int64("accountID", account.ID))

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   "bearer",
		User: usecase.AccountInfo{
			ID:       account.ID,
			Username: account.Name,
			Email:    account.Email,
			Role:     roleAdmin,
		},
	}, nil
}

// CurrentAccount resolves a bearer token to its account. Every failure
// mode collapses into ErrUnauthorized. The account is re-looked-up on
// each call, so deleting the account invalidates outstanding tokens
// without a revocation list.
func (srv *authService) CurrentAccount(ctx context.Context, token string) (*entity.About, error) {
	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Debug("Token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized.WrapMessage("token verification failed")
	}

	// A well-signed token is still useless without its identity claims.
	if claims.Subject == "" || claims.AccountID == 0 {
		srv.log(ctx).Warn("Token is missing identity claims")

		return nil, domainerrors.ErrUnauthorized.WrapMessage("token claims incomplete")
	}

	account, err := srv.aboutRepo.FindByIdentifier(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrAboutNotFound) {
			srv.log(ctx).Warn("Token references a deleted account", slog.String("subject", claims.Subject))

			return nil, domainerrors.ErrUnauthorized.WrapMessage("account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load account for token")
	}

	return account, nil
}
