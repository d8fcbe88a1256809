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

// trainingService implements the TrainingUsecase interface.
type trainingService struct {
	txManager    repository.TransactionManager
	trainingRepo repository.TrainingRepository
	logger       *slog.Logger
}

// TrainingServiceParams holds dependencies for trainingService, injected by Fx.
type TrainingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TrainingRepo repository.TrainingRepository
	Logger       *slog.Logger
}

// NewTrainingService is the constructor for trainingService.
func NewTrainingService(params TrainingServiceParams) usecase.TrainingUsecase {
	return &trainingService{
		txManager:    params.TxManager,
		trainingRepo: params.TrainingRepo,
		logger:       params.Logger,
	}
}

func (srv *trainingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves every training entry. An empty store yields an empty
// slice.
func (srv *trainingService) List(ctx context.Context) ([]*entity.Training, error) {
	trainings, err := srv.trainingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trainings")
	}

	return trainings, nil
}

// Create persists a new training entry. Status defaults to pending.
func (srv *trainingService) Create(ctx context.Context, input usecase.CreateTrainingInput) (*entity.Training, error) {
	status := entity.ProjectStatusPending
	if input.Status != nil {
		status = *input.Status
	}

	training := &entity.Training{
		NameFR:        input.NameFR,
		NameEN:        input.NameEN,
		DescriptionFR: input.DescriptionFR,
		DescriptionEN: input.DescriptionEN,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Duration:      input.Duration,
		Status:        status,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.TrainingRepo().Create(ctx, training)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Training created", slog.Int64("trainingID", training.ID))

	return training, nil
}

// Update applies the non-nil fields of the input to the stored entry.
func (srv *trainingService) Update(ctx context.Context, id int64, input usecase.UpdateTrainingInput) (*entity.Training, error) {
	var updated *entity.Training
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		trainingRepo := repoFactory.TrainingRepo()

		training, err := trainingRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrTrainingNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("training not found")
			}

			return errors.Wrap(err, "failed to load training for update")
		}

		if input.NameFR != nil {
			training.NameFR = *input.NameFR
		}
		if input.NameEN != nil {
			training.NameEN = *input.NameEN
		}
		if input.DescriptionFR != nil {
			training.DescriptionFR = *input.DescriptionFR
		}
		if input.DescriptionEN != nil {
			training.DescriptionEN = *input.DescriptionEN
		}
		if input.StartDate != nil {
			training.StartDate = input.StartDate
		}
		if input.EndDate != nil {
			training.EndDate = input.EndDate
		}
		if input.Duration != nil {
			training.Duration = input.Duration
		}
		if input.Status != nil {
			training.Status = *input.Status
		}

		if err := trainingRepo.Save(ctx, training); err != nil {
			return err
		}

		updated = training

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Training updated", slog.Int64("trainingID", id))

	return updated, nil
}

// Delete removes the training entry with the given ID.
func (srv *trainingService) Delete(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.TrainingRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrTrainingNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("training not found")
			}

			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Training deleted", slog.Int64("trainingID", id))

	return nil
}
