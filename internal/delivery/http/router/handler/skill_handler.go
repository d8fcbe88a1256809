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

type skillResponse struct {
	ID            int64          `json:"id"`
	NameFR        string         `json:"name_fr"`
	NameEN        string         `json:"name_en"`
	DescriptionFR *string        `json:"description_fr"`
	DescriptionEN *string        `json:"description_en"`
	Tools         []toolResponse `json:"tools"`
	CreatedAt     *time.Time     `json:"created_at"`
	UpdatedAt     *time.Time     `json:"updated_at"`
}

func newSkillResponse(skill *entity.Skill) skillResponse {
	return skillResponse{
		ID:            skill.ID,
		NameFR:        skill.NameFR,
		NameEN:        skill.NameEN,
		DescriptionFR: skill.DescriptionFR,
		DescriptionEN: skill.DescriptionEN,
		Tools:         newToolListResponse(skill.Tools),
		CreatedAt:     skill.CreatedAt,
		UpdatedAt:     skill.UpdatedAt,
	}
}

func newSkillListResponse(skills []*entity.Skill) []skillResponse {
	out := make([]skillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, newSkillResponse(s))
	}

	return out
}

// SkillHandler holds dependencies for skill handlers.
type SkillHandler struct {
	uc     usecase.SkillUsecase
	logger *slog.Logger
}

// NewSkillHandler is the constructor for SkillHandler, injected by Fx.
func NewSkillHandler(uc usecase.SkillUsecase, logger *slog.Logger) *SkillHandler {
	return &SkillHandler{uc: uc, logger: logger}
}

// List returns every skill with its tools.
func (h *SkillHandler) List(c echo.Context) error {
	skills, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSkillListResponse(skills), "")
}

// Create handles the skill creation request.
func (h *SkillHandler) Create(c echo.Context) error {
	var input usecase.CreateSkillInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid skill input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	skill, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newSkillResponse(skill), "Skill created")
}

// Update handles a partial update of a skill.
func (h *SkillHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.UpdateSkillInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid skill input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	skill, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSkillResponse(skill), "Skill updated")
}

// Delete removes a skill together with the tools it owns.
func (h *SkillHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
