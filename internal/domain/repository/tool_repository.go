package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain/entity"
)

// ErrToolNotFound is returned when no tool matches a lookup.
var ErrToolNotFound = errors.New("tool not found")

// ToolRepository persists tools. Deleting a tool never affects its
// owning skill.
type ToolRepository interface {
	FindAll(ctx context.Context) ([]*entity.Tool, error)
	FindByID(ctx context.Context, id int64) (*entity.Tool, error)
	Create(ctx context.Context, tool *entity.Tool) error
	Save(ctx context.Context, tool *entity.Tool) error
	Delete(ctx context.Context, id int64) error
}
