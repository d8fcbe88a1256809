package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// CreateContactInput defines the data required to create the contact
// links record. Every link is optional.
type CreateContactInput struct {
	Instagram *string `json:"instagram"`
	LinkedIn  *string `json:"linkedin"`
	X         *string `json:"x"`
	GitHub    *string `json:"github"`
	Resume    *string `json:"resume"`
}

// UpdateContactInput defines a partial update of the contact links.
type UpdateContactInput struct {
	Instagram *string `json:"instagram"`
	LinkedIn  *string `json:"linkedin"`
	X         *string `json:"x"`
	GitHub    *string `json:"github"`
	Resume    *string `json:"resume"`
}

// ContactUsecase defines the interface for the singleton contact-links
// record.
type ContactUsecase interface {
	Get(ctx context.Context) (*entity.Contact, error)
	Create(ctx context.Context, input CreateContactInput) (*entity.Contact, error)
	Update(ctx context.Context, id int64, input UpdateContactInput) (*entity.Contact, error)
	Delete(ctx context.Context, id int64) error
}
