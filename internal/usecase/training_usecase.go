package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// CreateTrainingInput defines the data required to create a training
// entry. Duration is expressed in years; Status defaults to pending.
type CreateTrainingInput struct {
	NameFR        string  `json:"name_fr" validate:"required"`
	NameEN        string  `json:"name_en" validate:"required"`
	DescriptionFR string  `json:"description_fr" validate:"required"`
	DescriptionEN string  `json:"description_en" validate:"required"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	Duration      *int    `json:"duration" validate:"omitempty,min=0"`
	Status        *string `json:"status" validate:"omitempty,oneof=pending in_progress completed failed"`
}

// UpdateTrainingInput defines a partial update of a training entry.
type UpdateTrainingInput struct {
	NameFR        *string `json:"name_fr"`
	NameEN        *string `json:"name_en"`
	DescriptionFR *string `json:"description_fr"`
	DescriptionEN *string `json:"description_en"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	Duration      *int    `json:"duration" validate:"omitempty,min=0"`
	Status        *string `json:"status" validate:"omitempty,oneof=pending in_progress completed failed"`
}

// TrainingUsecase defines the interface for training entries.
type TrainingUsecase interface {
	List(ctx context.Context) ([]*entity.Training, error)
	Create(ctx context.Context, input CreateTrainingInput) (*entity.Training, error)
	Update(ctx context.Context, id int64, input UpdateTrainingInput) (*entity.Training, error)
	Delete(ctx context.Context, id int64) error
}
