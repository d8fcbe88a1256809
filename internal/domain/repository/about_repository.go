package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain/entity"
)

// ErrAboutNotFound is returned when no about record matches a lookup.
var ErrAboutNotFound = errors.New("about not found")

// AboutRepository persists the About record, which doubles as the login
// account (see the auth usecase).
type AboutRepository interface {
	// First retrieves the singleton about record.
	First(ctx context.Context) (*entity.About, error)

	// FindByID retrieves a single about record by its ID.
	FindByID(ctx context.Context, id int64) (*entity.About, error)

	// FindByIdentifier retrieves the first about record whose name or
	// email equals identifier. Lookup order is unspecified; a second
	// inserted row would shadow the first (uniqueness is deliberately
	// not enforced at the store level).
	FindByIdentifier(ctx context.Context, identifier string) (*entity.About, error)

	// Create persists a new about record and backfills generated fields.
	Create(ctx context.Context, about *entity.About) error

	// Save writes all fields of an existing about record.
	Save(ctx context.Context, about *entity.About) error

	// Delete removes the about record with the given ID.
	Delete(ctx context.Context, id int64) error
}
