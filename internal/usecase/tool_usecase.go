package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// CreateToolInput defines the data required to create a tool. SkillID
// is optional; when set it must reference an existing skill.
type CreateToolInput struct {
	NameFR        string  `json:"name_fr" validate:"required"`
	NameEN        string  `json:"name_en" validate:"required"`
	DescriptionFR *string `json:"description_fr"`
	DescriptionEN *string `json:"description_en"`
	SkillID       *int64  `json:"skill_id"`
}

// UpdateToolInput defines a partial update of a tool.
type UpdateToolInput struct {
	NameFR        *string `json:"name_fr"`
	NameEN        *string `json:"name_en"`
	DescriptionFR *string `json:"description_fr"`
	DescriptionEN *string `json:"description_en"`
	SkillID       *int64  `json:"skill_id"`
}

// ToolUsecase defines the interface for tools.
type ToolUsecase interface {
	List(ctx context.Context) ([]*entity.Tool, error)
	Create(ctx context.Context, input CreateToolInput) (*entity.Tool, error)
	Update(ctx context.Context, id int64, input UpdateToolInput) (*entity.Tool, error)
	Delete(ctx context.Context, id int64) error
}
