package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// CreateExperienceInput defines the data required to create an
// experience entry. Company and job title are bilingual and required.
type CreateExperienceInput struct {
	CompanyNameFR string  `json:"company_name_fr" validate:"required"`
	CompanyNameEN string  `json:"company_name_en" validate:"required"`
	JobTitleFR    string  `json:"job_title_fr" validate:"required"`
	JobTitleEN    string  `json:"job_title_en" validate:"required"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	DescriptionFR *string `json:"description_fr"`
	DescriptionEN *string `json:"description_en"`
}

// UpdateExperienceInput defines a partial update of an experience entry.
type UpdateExperienceInput struct {
	CompanyNameFR *string `json:"company_name_fr"`
	CompanyNameEN *string `json:"company_name_en"`
	JobTitleFR    *string `json:"job_title_fr"`
	JobTitleEN    *string `json:"job_title_en"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	DescriptionFR *string `json:"description_fr"`
	DescriptionEN *string `json:"description_en"`
}

// ExperienceUsecase defines the interface for experience entries.
type ExperienceUsecase interface {
	List(ctx context.Context) ([]*entity.Experience, error)
	Create(ctx context.Context, input CreateExperienceInput) (*entity.Experience, error)
	Update(ctx context.Context, id int64, input UpdateExperienceInput) (*entity.Experience, error)
	Delete(ctx context.Context, id int64) error
}
