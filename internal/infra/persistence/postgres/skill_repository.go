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

// skillRepository implements the domain.SkillRepository interface using GORM.
type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository is the constructor for skillRepository.
func NewSkillRepository(db *gorm.DB) repository.SkillRepository {
	return &skillRepository{db: db}
}

// FindAll retrieves every skill with its owned tools, ordered by primary key.
func (repo *skillRepository) FindAll(ctx context.Context) ([]*entity.Skill, error) {
	var skillMs []*model.SkillModel
	err := repo.db.WithContext(ctx).
		Preload("Tools").
		Order("id").
		Find(&skillMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skills")
	}

	skills := make([]*entity.Skill, 0, len(skillMs))
	for _, m := range skillMs {
		skills = append(skills, toSkillDomain(m))
	}

	return skills, nil
}

// FindByID retrieves a single skill with its owned tools by its unique ID.
func (repo *skillRepository) FindByID(ctx context.Context, id int64) (*entity.Skill, error) {
	var skillM model.SkillModel
	err := repo.db.WithContext(ctx).
		Preload("Tools").
		First(&skillM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSkillNotFound
		}

		return nil, errors.Wrap(err, "failed to find skill by id")
	}

	return toSkillDomain(&skillM), nil
}

// Create persists a new skill to the database. Tools attached to the
// entity are inserted along with it through the association.
func (repo *skillRepository) Create(ctx context.Context, skill *entity.Skill) error {
	skillM := fromSkillDomain(skill)

	if err := repo.db.WithContext(ctx).Create(skillM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required skill information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create skill")
	}

	skill.ID = skillM.ID
	skill.CreatedAt = skillM.CreatedAt
	skill.UpdatedAt = skillM.UpdatedAt
	for i, toolM := range skillM.Tools {
		if i < len(skill.Tools) {
			skill.Tools[i].ID = toolM.ID
			skill.Tools[i].SkillID = toolM.SkillID
		}
	}

	return nil
}

// Save writes the skill's own columns. Tool rows are managed through
// the ToolRepository, so associations are deliberately not saved here.
func (repo *skillRepository) Save(ctx context.Context, skill *entity.Skill) error {
	skillM := fromSkillDomain(skill)
	skillM.Tools = nil

	err := repo.db.WithContext(ctx).
		Omit("Tools").
		Save(skillM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required skill information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save skill")
	}

	skill.UpdatedAt = skillM.UpdatedAt

	return nil
}

// Delete removes the skill and its tools. The tools are removed
// explicitly so the cascade holds even on schemas migrated before the
// ON DELETE CASCADE constraint existed.
func (repo *skillRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).Where("skill_id = ?", id).Delete(&model.ToolModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete skill tools")
	}

	result := repo.db.WithContext(ctx).Delete(&model.SkillModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete skill")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSkillNotFound
	}

	return nil
}

func toSkillDomain(m *model.SkillModel) *entity.Skill {
	tools := make([]*entity.Tool, 0, len(m.Tools))
	for _, toolM := range m.Tools {
		tools = append(tools, toToolDomain(toolM))
	}

	return &entity.Skill{
		ID:            m.ID,
		NameFR:        m.NameFR,
		NameEN:        m.NameEN,
		DescriptionFR: m.DescriptionFR,
		DescriptionEN: m.DescriptionEN,
		Tools:         tools,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromSkillDomain(e *entity.Skill) *model.SkillModel {
	tools := make([]*model.ToolModel, 0, len(e.Tools))
	for _, tool := range e.Tools {
		tools = append(tools, fromToolDomain(tool))
	}

	return &model.SkillModel{
		ID:            e.ID,
		NameFR:        e.NameFR,
		NameEN:        e.NameEN,
		DescriptionFR: e.DescriptionFR,
		DescriptionEN: e.DescriptionEN,
		Tools:         tools,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
