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

type experienceResponse struct {
	ID            int64      `json:"id"`
	CompanyNameFR string     `json:"company_name_fr"`
	CompanyNameEN string     `json:"company_name_en"`
	JobTitleFR    string     `json:"job_title_fr"`
	JobTitleEN    string     `json:"job_title_en"`
	StartDate     *string    `json:"start_date"`
	EndDate       *string    `json:"end_date"`
	DescriptionFR *string    `json:"description_fr"`
	DescriptionEN *string    `json:"description_en"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func newExperienceResponse(experience *entity.Experience) experienceResponse {
	return experienceResponse{
		ID:            experience.ID,
		CompanyNameFR: experience.CompanyNameFR,
		CompanyNameEN: experience.CompanyNameEN,
		JobTitleFR:    experience.JobTitleFR,
		JobTitleEN:    experience.JobTitleEN,
		StartDate:     experience.StartDate,
		EndDate:       experience.EndDate,
		DescriptionFR: experience.DescriptionFR,
		DescriptionEN: experience.DescriptionEN,
		CreatedAt:     experience.CreatedAt,
		UpdatedAt:     experience.UpdatedAt,
	}
}

func newExperienceListResponse(experiences []*entity.Experience) []experienceResponse {
	out := make([]experienceResponse, 0, len(experiences))
	for _, e := range experiences {
		out = append(out, newExperienceResponse(e))
	}

	return out
}

// ExperienceHandler holds dependencies for experience handlers.
type ExperienceHandler struct {
	uc     usecase.ExperienceUsecase
	logger *slog.Logger
}

// NewExperienceHandler is the constructor for ExperienceHandler, injected by Fx.
func NewExperienceHandler(uc usecase.ExperienceUsecase, logger *slog.Logger) *ExperienceHandler {
	return &ExperienceHandler{uc: uc, logger: logger}
}

// List returns every experience entry.
func (h *ExperienceHandler) List(c echo.Context) error {
	experiences, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newExperienceListResponse(experiences), "")
}

// Create handles the experience creation request.
func (h *ExperienceHandler) Create(c echo.Context) error {
	var input usecase.CreateExperienceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid experience input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	experience, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newExperienceResponse(experience), "Experience created")
}

// Update handles a partial update of an experience entry.
func (h *ExperienceHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.UpdateExperienceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid experience input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	experience, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newExperienceResponse(experience), "Experience updated")
}

// Delete removes an experience entry.
func (h *ExperienceHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
