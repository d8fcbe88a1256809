package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain/entity"
)

// ErrExperienceNotFound is returned when no experience matches a lookup.
var ErrExperienceNotFound = errors.New("experience not found")

// ExperienceRepository persists professional experience entries.
type ExperienceRepository interface {
	FindAll(ctx context.Context) ([]*entity.Experience, error)
	FindByID(ctx context.Context, id int64) (*entity.Experience, error)
	Create(ctx context.Context, experience *entity.Experience) error
	Save(ctx context.Context, experience *entity.Experience) error
	Delete(ctx context.Context, id int64) error
}
