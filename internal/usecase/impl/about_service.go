package impl

import (
	"context"
	"log/slog"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// aboutService implements the AboutUsecase interface.
type aboutService struct {
	txManager repository.TransactionManager
	aboutRepo repository.AboutRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// AboutServiceParams holds dependencies for aboutService, injected by Fx.
type AboutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	AboutRepo repository.AboutRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAboutService is the constructor for aboutService.
func NewAboutService(params AboutServiceParams) usecase.AboutUsecase {
	return &aboutService{
		txManager: params.TxManager,
		aboutRepo: params.AboutRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *aboutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get retrieves the singleton profile record.
func (srv *aboutService) Get(ctx context.Context) (*entity.About, error) {
	about, err := srv.aboutRepo.First(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrAboutNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("about not found")
		}

		return nil, errors.Wrap(err, "failed to get about")
	}

	return about, nil
}

// Create hashes the plaintext password and persists the profile record.
func (srv *aboutService) Create(ctx context.Context, input usecase.CreateAboutInput) (*entity.About, error) {
	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	about := &entity.About{
		ProfileImage:    input.ProfileImage,
		ProfileImageURL: input.ProfileImageURL,
		Firstname:       input.Firstname,
		Lastname:        input.Lastname,
		Name:            input.Name,
		Email:           input.Email,
		PasswordHash:    hashed,
		Phone:           input.Phone,
		Address:         input.Address,
		City:            input.City,
		Country:         input.Country,
		AboutMeFR:       input.AboutMeFR,
		AboutMeEN:       input.AboutMeEN,
		JobTitleFR:      input.JobTitleFR,
		JobTitleEN:      input.JobTitleEN,
		DescriptionFR:   input.DescriptionFR,
		DescriptionEN:   input.DescriptionEN,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.AboutRepo().Create(ctx, about)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("About created", slog.Int64("aboutID", about.ID))

	return about, nil
}

// Update applies the non-nil fields of the input to the stored record.
// A supplied password is re-hashed before storage.
func (srv *aboutService) Update(ctx context.Context, id int64, input usecase.UpdateAboutInput) (*entity.About, error) {
	var updated *entity.About
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		aboutRepo := repoFactory.AboutRepo()

		about, err := aboutRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAboutNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("about not found")
			}

			return errors.Wrap(err, "failed to load about for update")
		}

		if err := srv.applyAboutPatch(ctx, about, input); err != nil {
			return err
		}

		if err := aboutRepo.Save(ctx, about); err != nil {
			return err
		}

		updated = about

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("About updated", slog.Int64("aboutID", id))

	return updated, nil
}

// Delete removes the profile record with the given ID.
func (srv *aboutService) Delete(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AboutRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrAboutNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("about not found")
			}

			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("About deleted", slog.Int64("aboutID", id))

	return nil
}

func (srv *aboutService) applyAboutPatch(ctx context.Context, about *entity.About, input usecase.UpdateAboutInput) error {
	if input.ProfileImage != nil {
		about.ProfileImage = input.ProfileImage
	}
	if input.ProfileImageURL != nil {
		about.ProfileImageURL = input.ProfileImageURL
	}
	if input.Firstname != nil {
		about.Firstname = *input.Firstname
	}
	if input.Lastname != nil {
		about.Lastname = *input.Lastname
	}
	if input.Name != nil {
		about.Name = *input.Name
	}
	if input.Email != nil {
		about.Email = *input.Email
	}
	if input.Password != nil {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

			return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
		}
		about.PasswordHash = hashed
	}
	if input.Phone != nil {
		about.Phone = input.Phone
	}
	if input.Address != nil {
		about.Address = input.Address
	}
	if input.City != nil {
		about.City = input.City
	}
	if input.Country != nil {
		about.Country = input.Country
	}
	if input.AboutMeFR != nil {
		about.AboutMeFR = input.AboutMeFR
	}
	if input.AboutMeEN != nil {
		about.AboutMeEN = input.AboutMeEN
	}
	if input.JobTitleFR != nil {
		about.JobTitleFR = input.JobTitleFR
	}
	if input.JobTitleEN != nil {
		about.JobTitleEN = input.JobTitleEN
	}
	if input.DescriptionFR != nil {
		about.DescriptionFR = input.DescriptionFR
	}
	if input.DescriptionEN != nil {
		about.DescriptionEN = input.DescriptionEN
	}

	return nil
}
