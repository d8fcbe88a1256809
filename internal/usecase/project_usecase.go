package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// CreateProjectInput defines the data required to create a project.
// Status defaults to pending when omitted.
type CreateProjectInput struct {
	NameFR        string  `json:"name_fr" validate:"required"`
	NameEN        string  `json:"name_en" validate:"required"`
	DescriptionFR *string `json:"description_fr"`
	DescriptionEN *string `json:"description_en"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	Status        *string `json:"status" validate:"omitempty,oneof=pending in_progress completed failed"`
}

// UpdateProjectInput defines a partial update of a project.
type UpdateProjectInput struct {
	NameFR        *string `json:"name_fr"`
	NameEN        *string `json:"name_en"`
	DescriptionFR *string `json:"description_fr"`
	DescriptionEN *string `json:"description_en"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	Status        *string `json:"status" validate:"omitempty,oneof=pending in_progress completed failed"`
}

// ProjectUsecase defines the interface for portfolio projects.
type ProjectUsecase interface {
	List(ctx context.Context) ([]*entity.Project, error)
	Create(ctx context.Context, input CreateProjectInput) (*entity.Project, error)
	Update(ctx context.Context, id int64, input UpdateProjectInput) (*entity.Project, error)
	Delete(ctx context.Context, id int64) error
}
