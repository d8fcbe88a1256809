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

// toolRepository implements the domain.ToolRepository interface using GORM.
type toolRepository struct {
	db *gorm.DB
}

// NewToolRepository is the constructor for toolRepository.
func NewToolRepository(db *gorm.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

// FindAll retrieves every tool ordered by primary key.
func (repo *toolRepository) FindAll(ctx context.Context) ([]*entity.Tool, error) {
	var toolMs []*model.ToolModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&toolMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tools")
	}

	tools := make([]*entity.Tool, 0, len(toolMs))
	for _, m := range toolMs {
		tools = append(tools, toToolDomain(m))
	}

	return tools, nil
}

// FindByID retrieves a single tool by its unique ID.
func (repo *toolRepository) FindByID(ctx context.Context, id int64) (*entity.Tool, error) {
	var toolM model.ToolModel
	if err := repo.db.WithContext(ctx).First(&toolM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrToolNotFound
		}

		return nil, errors.Wrap(err, "failed to find tool by id")
	}

	return toToolDomain(&toolM), nil
}

// Create persists a new tool to the database.
func (repo *toolRepository) Create(ctx context.Context, tool *entity.Tool) error {
	toolM := fromToolDomain(tool)

	if err := repo.db.WithContext(ctx).Create(toolM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("skill does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required tool information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tool")
	}

	tool.ID = toolM.ID
	tool.CreatedAt = toolM.CreatedAt
	tool.UpdatedAt = toolM.UpdatedAt

	return nil
}

// Save writes all fields of an existing tool.
func (repo *toolRepository) Save(ctx context.Context, tool *entity.Tool) error {
	toolM := fromToolDomain(tool)

	if err := repo.db.WithContext(ctx).Save(toolM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("skill does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required tool information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save tool")
	}

	tool.UpdatedAt = toolM.UpdatedAt

	return nil
}

// Delete removes the tool with the given ID. The owning skill is untouched.
func (repo *toolRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ToolModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete tool")
	}
	if result.RowsAffected == 0 {
		return repository.ErrToolNotFound
	}

	return nil
}

func toToolDomain(m *model.ToolModel) *entity.Tool {
	return &entity.Tool{
		ID:            m.ID,
		NameFR:        m.NameFR,
		NameEN:        m.NameEN,
		DescriptionFR: m.DescriptionFR,
		DescriptionEN: m.DescriptionEN,
		SkillID:       m.SkillID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromToolDomain(e *entity.Tool) *model.ToolModel {
	return &model.ToolModel{
		ID:            e.ID,
		NameFR:        e.NameFR,
		NameEN:        e.NameEN,
		DescriptionFR: e.DescriptionFR,
		DescriptionEN: e.DescriptionEN,
		SkillID:       e.SkillID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
