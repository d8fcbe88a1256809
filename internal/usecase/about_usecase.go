package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// CreateAboutInput defines the data required to create the profile
// record. Password arrives in plaintext and is hashed before storage.
type CreateAboutInput struct {
	ProfileImage    *string `json:"profile_image"`
	ProfileImageURL *string `json:"profile_image_url"`
	Firstname       string  `json:"firstname" validate:"required"`
	Lastname        string  `json:"lastname" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	City            *string `json:"city"`
	Country         *string `json:"country"`
	AboutMeFR       *string `json:"about_me_fr"`
	AboutMeEN       *string `json:"about_me_en"`
	JobTitleFR      *string `json:"job_title_fr"`
	JobTitleEN      *string `json:"job_title_en"`
	DescriptionFR   *string `json:"description_fr"`
	DescriptionEN   *string `json:"description_en"`
}

// UpdateAboutInput defines a partial update. Only non-nil fields are
// applied; a supplied password is re-hashed.
type UpdateAboutInput struct {
	ProfileImage    *string `json:"profile_image"`
	ProfileImageURL *string `json:"profile_image_url"`
	Firstname       *string `json:"firstname"`
	Lastname        *string `json:"lastname"`
	Name            *string `json:"name"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Password        *string `json:"password"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	City            *string `json:"city"`
	Country         *string `json:"country"`
	AboutMeFR       *string `json:"about_me_fr"`
	AboutMeEN       *string `json:"about_me_en"`
	JobTitleFR      *string `json:"job_title_fr"`
	JobTitleEN      *string `json:"job_title_en"`
	DescriptionFR   *string `json:"description_fr"`
	DescriptionEN   *string `json:"description_en"`
}

// AboutUsecase defines the interface for profile-related operations.
// The about record is a singleton that doubles as the login account.
type AboutUsecase interface {
	Get(ctx context.Context) (*entity.About, error)
	Create(ctx context.Context, input CreateAboutInput) (*entity.About, error)
	Update(ctx context.Context, id int64, input UpdateAboutInput) (*entity.About, error)
	Delete(ctx context.Context, id int64) error
}
