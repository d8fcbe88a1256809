package handler

import (
	"log/slog"
	"net/http"
	"time"

	"portfolio/internal/delivery/http/response"
	"portfolio/internal/domain/entity"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// aboutResponse is the public projection of the profile record. The
// password hash never leaves the server.
type aboutResponse struct {
	ID              int64      `json:"id"`
	ProfileImage    *string    `json:"profile_image"`
	ProfileImageURL *string    `json:"profile_image_url"`
	Firstname       string     `json:"firstname"`
	Lastname        string     `json:"lastname"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           *string    `json:"phone"`
	Address         *string    `json:"address"`
	City            *string    `json:"city"`
	Country         *string    `json:"country"`
	AboutMeFR       *string    `json:"about_me_fr"`
	AboutMeEN       *string    `json:"about_me_en"`
	JobTitleFR      *string    `json:"job_title_fr"`
	JobTitleEN      *string    `json:"job_title_en"`
	DescriptionFR   *string    `json:"description_fr"`
	DescriptionEN   *string    `json:"description_en"`
	CreatedAt       *time.Time `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

func newAboutResponse(about *entity.About) aboutResponse {
	return aboutResponse{
		ID:              about.ID,
		ProfileImage:    about.ProfileImage,
		ProfileImageURL: about.ProfileImageURL,
		Firstname:       about.Firstname,
		Lastname:        about.Lastname,
		Name:            about.Name,
		Email:           about.Email,
		Phone:           about.Phone,
		Address:         about.Address,
		City:            about.City,
		Country:         about.Country,
		AboutMeFR:       about.AboutMeFR,
		AboutMeEN:       about.AboutMeEN,
		JobTitleFR:      about.JobTitleFR,
		JobTitleEN:      about.JobTitleEN,
		DescriptionFR:   about.DescriptionFR,
		DescriptionEN:   about.DescriptionEN,
		CreatedAt:       about.CreatedAt,
		UpdatedAt:       about.UpdatedAt,
	}
}

// AboutHandler holds dependencies for profile handlers.
type AboutHandler struct {
	uc     usecase.AboutUsecase
	logger *slog.Logger
}

// NewAboutHandler is the constructor for AboutHandler, injected by Fx.
func NewAboutHandler(uc usecase.AboutUsecase, logger *slog.Logger) *AboutHandler {
	return &AboutHandler{uc: uc, logger: logger}
}

// Get returns the singleton profile record.
func (h *AboutHandler) Get(c echo.Context) error {
	about, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAboutResponse(about), "")
}

// Create handles the profile creation request.
func (h *AboutHandler) Create(c echo.Context) error {
	var input usecase.CreateAboutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid about input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	about, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAboutResponse(about), "About created")
}

// Update handles a partial update of the profile record.
func (h *AboutHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.UpdateAboutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid about input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	about, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAboutResponse(about), "About updated")
}

// Delete removes the profile record.
func (h *AboutHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
