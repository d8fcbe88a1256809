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

// projectRepository implements the domain.ProjectRepository interface using GORM.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

// FindAll retrieves every project ordered by primary key.
func (repo *projectRepository) FindAll(ctx context.Context) ([]*entity.Project, error) {
	var projectMs []*model.ProjectModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&projectMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	projects := make([]*entity.Project, 0, len(projectMs))
	for _, m := range projectMs {
		projects = append(projects, toProjectDomain(m))
	}

	return projects, nil
}

// FindByID retrieves a single project by its unique ID.
func (repo *projectRepository) FindByID(ctx context.Context, id int64) (*entity.Project, error) {
	var projectM model.ProjectModel
	if err := repo.db.WithContext(ctx).First(&projectM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by id")
	}

	return toProjectDomain(&projectM), nil
}

// Create persists a new project to the database.
func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required project information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.ID = projectM.ID
	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// Save writes all fields of an existing project.
func (repo *projectRepository) Save(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Save(projectM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required project information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save project")
	}

	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// Delete removes the project with the given ID.
func (repo *projectRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProjectModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

func toProjectDomain(m *model.ProjectModel) *entity.Project {
	return &entity.Project{
		ID:            m.ID,
		NameFR:        m.NameFR,
		NameEN:        m.NameEN,
		DescriptionFR: m.DescriptionFR,
		DescriptionEN: m.DescriptionEN,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromProjectDomain(e *entity.Project) *model.ProjectModel {
	return &model.ProjectModel{
		ID:            e.ID,
		NameFR:        e.NameFR,
		NameEN:        e.NameEN,
		DescriptionFR: e.DescriptionFR,
		DescriptionEN: e.DescriptionEN,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		Status:        e.Status,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
