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

type projectResponse struct {
	ID            int64      `json:"id"`
	NameFR        string     `json:"name_fr"`
	NameEN        string     `json:"name_en"`
	DescriptionFR *string    `json:"description_fr"`
	DescriptionEN *string    `json:"description_en"`
	StartDate     *string    `json:"start_date"`
	EndDate       *string    `json:"end_date"`
	Status        string     `json:"status"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func newProjectResponse(project *entity.Project) projectResponse {
	return projectResponse{
		ID:            project.ID,
		NameFR:        project.NameFR,
		NameEN:        project.NameEN,
		DescriptionFR: project.DescriptionFR,
		DescriptionEN: project.DescriptionEN,
		StartDate:     project.StartDate,
		EndDate:       project.EndDate,
		Status:        project.Status,
		CreatedAt:     project.CreatedAt,
		UpdatedAt:     project.UpdatedAt,
	}
}

func newProjectListResponse(projects []*entity.Project) []projectResponse {
	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, newProjectResponse(p))
	}

	return out
}

// ProjectHandler holds dependencies for project handlers.
type ProjectHandler struct {
	uc     usecase.ProjectUsecase
	logger *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(uc usecase.ProjectUsecase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{uc: uc, logger: logger}
}

// List returns every project.
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProjectListResponse(projects), "")
}

// Create handles the project creation request.
func (h *ProjectHandler) Create(c echo.Context) error {
	var input usecase.CreateProjectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	project, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProjectResponse(project), "Project created")
}

// Update handles a partial update of a project.
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.UpdateProjectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	project, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProjectResponse(project), "Project updated")
}

// Delete removes a project.
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
