package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain/entity"
)

// ErrSkillNotFound is returned when no skill matches a lookup.
var ErrSkillNotFound = errors.New("skill not found")

// SkillRepository persists skills. Reads include the owned tools;
// Delete removes the skill's tools in the same transaction.
type SkillRepository interface {
	FindAll(ctx context.Context) ([]*entity.Skill, error)
	FindByID(ctx context.Context, id int64) (*entity.Skill, error)
	Create(ctx context.Context, skill *entity.Skill) error
	Save(ctx context.Context, skill *entity.Skill) error

	// Delete removes the skill and cascades to its tools.
	Delete(ctx context.Context, id int64) error
}
