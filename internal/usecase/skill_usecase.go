package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// CreateSkillInput defines the data required to create a skill.
type CreateSkillInput struct {
	NameFR        string  `json:"name_fr" validate:"required"`
	NameEN        string  `json:"name_en" validate:"required"`
	DescriptionFR *string `json:"description_fr"`
	DescriptionEN *string `json:"description_en"`
}

// UpdateSkillInput defines a partial update of a skill.
type UpdateSkillInput struct {
	NameFR        *string `json:"name_fr"`
	NameEN        *string `json:"name_en"`
	DescriptionFR *string `json:"description_fr"`
	DescriptionEN *string `json:"description_en"`
}

// SkillUsecase defines the interface for skills. Deleting a skill also
// removes the tools attached to it.
type SkillUsecase interface {
	List(ctx context.Context) ([]*entity.Skill, error)
	Create(ctx context.Context, input CreateSkillInput) (*entity.Skill, error)
	Update(ctx context.Context, id int64, input UpdateSkillInput) (*entity.Skill, error)
	Delete(ctx context.Context, id int64) error
}
