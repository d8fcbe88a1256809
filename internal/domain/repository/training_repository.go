package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain/entity"
)

// ErrTrainingNotFound is returned when no training matches a lookup.
var ErrTrainingNotFound = errors.New("training not found")

// TrainingRepository persists training and certification entries.
type TrainingRepository interface {
	FindAll(ctx context.Context) ([]*entity.Training, error)
	FindByID(ctx context.Context, id int64) (*entity.Training, error)
	Create(ctx context.Context, training *entity.Training) error
	Save(ctx context.Context, training *entity.Training) error
	Delete(ctx context.Context, id int64) error
}
