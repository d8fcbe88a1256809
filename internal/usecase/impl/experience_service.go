package impl

import (
	"context"
	"log/slog"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// experienceService implements the ExperienceUsecase interface.
type experienceService struct {
	txManager      repository.TransactionManager
	experienceRepo repository.ExperienceRepository
	logger         *slog.Logger
}

// ExperienceServiceParams holds dependencies for experienceService, injected by Fx.
type ExperienceServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ExperienceRepo repository.ExperienceRepository
	Logger         *slog.Logger
}

// NewExperienceService is the constructor for experienceService.
func NewExperienceService(params ExperienceServiceParams) usecase.ExperienceUsecase {
	return &experienceService{
		txManager:      params.TxManager,
		experienceRepo: params.ExperienceRepo,
		logger:         params.Logger,
	}
}

func (srv *experienceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves every experience entry. An empty store yields an empty
// slice, not an error.
func (srv *experienceService) List(ctx context.Context) ([]*entity.Experience, error) {
	experiences, err := srv.experienceRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list experiences")
	}

	return experiences, nil
}

// Create persists a new experience entry.
func (srv *experienceService) Create(ctx context.Context, input usecase.CreateExperienceInput) (*entity.Experience, error) {
	experience := &entity.Experience{
		CompanyNameFR: input.CompanyNameFR,
		CompanyNameEN: input.CompanyNameEN,
		JobTitleFR:    input.JobTitleFR,
		JobTitleEN:    input.JobTitleEN,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		DescriptionFR: input.DescriptionFR,
		DescriptionEN: input.DescriptionEN,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ExperienceRepo().Create(ctx, experience)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Experience created", slog.Int64("experienceID", experience.ID))

	return experience, nil
}

// Update applies the non-nil fields of the input to the stored entry.
func (srv *experienceService) Update(ctx context.Context, id int64, input usecase.UpdateExperienceInput) (*entity.Experience, error) {
	var updated *entity.Experience
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		experienceRepo := repoFactory.ExperienceRepo()

		experience, err := experienceRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrExperienceNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("experience not found")
			}

			return errors.Wrap(err, "failed to load experience for update")
		}

		if input.CompanyNameFR != nil {
			experience.CompanyNameFR = *input.CompanyNameFR
		}
		if input.CompanyNameEN != nil {
			experience.CompanyNameEN = *input.CompanyNameEN
		}
		if input.JobTitleFR != nil {
			experience.JobTitleFR = *input.JobTitleFR
		}
		if input.JobTitleEN != nil {
			experience.JobTitleEN = *input.JobTitleEN
		}
		if input.StartDate != nil {
			experience.StartDate = input.StartDate
		}
		if input.EndDate != nil {
			experience.EndDate = input.EndDate
		}
		if input.DescriptionFR != nil {
			experience.DescriptionFR = input.DescriptionFR
		}
		if input.DescriptionEN != nil {
			experience.DescriptionEN = input.DescriptionEN
		}

		if err := experienceRepo.Save(ctx, experience); err != nil {
			return err
		}

		updated = experience

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Experience updated", slog.Int64("experienceID", id))

	return updated, nil
}

// Delete removes the experience entry with the given ID.
func (srv *experienceService) Delete(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ExperienceRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrExperienceNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("experience not found")
			}

			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Experience deleted", slog.Int64("experienceID", id))

	return nil
}
