package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain/entity"
)

// ErrProjectNotFound is returned when no project matches a lookup.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository persists portfolio project entries.
type ProjectRepository interface {
	FindAll(ctx context.Context) ([]*entity.Project, error)
	FindByID(ctx context.Context, id int64) (*entity.Project, error)
	Create(ctx context.Context, project *entity.Project) error
	Save(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id int64) error
}
