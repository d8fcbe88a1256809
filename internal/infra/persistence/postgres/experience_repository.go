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

// experienceRepository implements the domain.ExperienceRepository interface using GORM.
type experienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository is the constructor for experienceRepository.
func NewExperienceRepository(db *gorm.DB) repository.ExperienceRepository {
	return &experienceRepository{db: db}
}

// FindAll retrieves every experience entry ordered by primary key.
func (repo *experienceRepository) FindAll(ctx context.Context) ([]*entity.Experience, error) {
	var experienceMs []*model.ExperienceModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&experienceMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list experiences")
	}

	experiences := make([]*entity.Experience, 0, len(experienceMs))
	for _, m := range experienceMs {
		experiences = append(experiences, toExperienceDomain(m))
	}

	return experiences, nil
}

// FindByID retrieves a single experience entry by its unique ID.
func (repo *experienceRepository) FindByID(ctx context.Context, id int64) (*entity.Experience, error) {
	var experienceM model.ExperienceModel
	if err := repo.db.WithContext(ctx).First(&experienceM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExperienceNotFound
		}

		return nil, errors.Wrap(err, "failed to find experience by id")
	}

	return toExperienceDomain(&experienceM), nil
}

// Create persists a new experience entry to the database.
func (repo *experienceRepository) Create(ctx context.Context, experience *entity.Experience) error {
	experienceM := fromExperienceDomain(experience)

	if err := repo.db.WithContext(ctx).Create(experienceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required experience information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create experience")
	}

	experience.ID = experienceM.ID
	experience.CreatedAt = experienceM.CreatedAt
	experience.UpdatedAt = experienceM.UpdatedAt

	return nil
}

// Save writes all fields of an existing experience entry.
func (repo *experienceRepository) Save(ctx context.Context, experience *entity.Experience) error {
	experienceM := fromExperienceDomain(experience)

	if err := repo.db.WithContext(ctx).Save(experienceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required experience information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save experience")
	}

	experience.UpdatedAt = experienceM.UpdatedAt

	return nil
}

// Delete removes the experience entry with the given ID.
func (repo *experienceRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ExperienceModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete experience")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExperienceNotFound
	}

	return nil
}

func toExperienceDomain(m *model.ExperienceModel) *entity.Experience {
	return &entity.Experience{
		ID:            m.ID,
		CompanyNameFR: m.CompanyNameFR,
		CompanyNameEN: m.CompanyNameEN,
		JobTitleFR:    m.JobTitleFR,
		JobTitleEN:    m.JobTitleEN,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		DescriptionFR: m.DescriptionFR,
		DescriptionEN: m.DescriptionEN,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromExperienceDomain(e *entity.Experience) *model.ExperienceModel {
	return &model.ExperienceModel{
		ID:            e.ID,
		CompanyNameFR: e.CompanyNameFR,
		CompanyNameEN: e.CompanyNameEN,
		JobTitleFR:    e.JobTitleFR,
		JobTitleEN:    e.JobTitleEN,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		DescriptionFR: e.DescriptionFR,
		DescriptionEN: e.DescriptionEN,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
