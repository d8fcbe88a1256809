package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain/entity"
)

// ErrContactNotFound is returned when no contact record matches a lookup.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository persists the singleton contact-links record.
type ContactRepository interface {
	// First retrieves the singleton contact record.
	First(ctx context.Context) (*entity.Contact, error)

	// FindByID retrieves a single contact record by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Contact, error)

	// Create persists a new contact record and backfills generated fields.
	Create(ctx context.Context, contact *entity.Contact) error

	// Save writes all fields of an existing contact record.
	Save(ctx context.Context, contact *entity.Contact) error

	// Delete removes the contact record with the given ID.
	Delete(ctx context.Context, id int64) error
}
