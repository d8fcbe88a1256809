package postgres

import (
	"context"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// trainingRepository implements the domain.TrainingRepository interface using GORM.
type trainingRepository struct {
	db *gorm.DB
}

// NewTrainingRepository is the constructor for trainingRepository.
func NewTrainingRepository(db *gorm.DB) repository.TrainingRepository {
	return &trainingRepository{db: db}
}

// FindAll retrieves every training entry ordered by primary key.
func (repo *trainingRepository) FindAll(ctx context.Context) ([]*entity.Training, error) {
	var trainingMs []*model.TrainingModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&trainingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list trainings")
	}

	trainings := make([]*entity.Training, 0, len(trainingMs))
	for _, m := range trainingMs {
		trainings = append(trainings, toTrainingDomain(m))
	}

	return trainings, nil
}

// FindByID retrieves a single training entry by its unique ID.
func (repo *trainingRepository) FindByID(ctx context.Context, id int64) (*entity.Training, error) {
	var trainingM model.TrainingModel
	if err := repo.db.WithContext(ctx).First(&trainingM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTrainingNotFound
		}

		return nil, errors.Wrap(err, "failed to find training by id")
	}

	return toTrainingDomain(&trainingM), nil
}

// Create persists a new training entry to the database.
func (repo *trainingRepository) Create(ctx context.Context, training *entity.Training) error {
	trainingM := fromTrainingDomain(training)

	if err := repo.db.WithContext(ctx).Create(trainingM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required training information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create training")
	}

	training.ID = trainingM.ID
	training.CreatedAt = trainingM.CreatedAt
	training.UpdatedAt = trainingM.UpdatedAt

	return nil
}

// Save writes all fields of an existing training entry.
func (repo *trainingRepository) Save(ctx context.Context, training *entity.Training) error {
	trainingM := fromTrainingDomain(training)

	if err := repo.db.WithContext(ctx).Save(trainingM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required training information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save training")
	}

	training.UpdatedAt = trainingM.UpdatedAt

	return nil
}

// Delete removes the training entry with the given ID.
func (repo *trainingRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.TrainingModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete training")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTrainingNotFound
	}

	return nil
}

func toTrainingDomain(m *model.TrainingModel) *entity.Training {
	return &entity.Training{
		ID:            m.ID,
		NameFR:        m.NameFR,
		NameEN:        m.NameEN,
		DescriptionFR: m.DescriptionFR,
		DescriptionEN: m.DescriptionEN,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Duration:      m.Duration,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromTrainingDomain(e *entity.Training) *model.TrainingModel {
	return &model.TrainingModel{
		ID:            e.ID,
		NameFR:        e.NameFR,
		NameEN:        e.NameEN,
		DescriptionFR: e.DescriptionFR,
		DescriptionEN: e.DescriptionEN,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		Duration:      e.Duration,
		Status:        e.Status,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
