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

type toolResponse struct {
	ID            int64      `json:"id"`
	NameFR        string     `json:"name_fr"`
	NameEN        string     `json:"name_en"`
	DescriptionFR *string    `json:"description_fr"`
	DescriptionEN *string    `json:"description_en"`
	SkillID       *int64     `json:"skill_id"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func newToolResponse(tool *entity.Tool) toolResponse {
	return toolResponse{
		ID:            tool.ID,
		NameFR:        tool.NameFR,
		NameEN:        tool.NameEN,
		DescriptionFR: tool.DescriptionFR,
		DescriptionEN: tool.DescriptionEN,
		SkillID:       tool.SkillID,
		CreatedAt:     tool.CreatedAt,
		UpdatedAt:     tool.UpdatedAt,
	}
}

func newToolListResponse(tools []*entity.Tool) []toolResponse {
	out := make([]toolResponse, 0, len(tools))
	for _, tool := range tools {
		out = append(out, newToolResponse(tool))
	}

	return out
}

// ToolHandler holds dependencies for tool handlers.
type ToolHandler struct {
	uc     usecase.ToolUsecase
	logger *slog.Logger
}

// NewToolHandler is the constructor for ToolHandler, injected by Fx.
func NewToolHandler(uc usecase.ToolUsecase, logger *slog.Logger) *ToolHandler {
	return &ToolHandler{uc: uc, logger: logger}
}

// List returns every tool.
func (h *ToolHandler) List(c echo.Context) error {
	tools, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newToolListResponse(tools), "")
}

// Create handles the tool creation request.
func (h *ToolHandler) Create(c echo.Context) error {
	var input usecase.CreateToolInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tool input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	tool, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newToolResponse(tool), "Tool created")
}

// Update handles a partial update of a tool.
func (h *ToolHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.UpdateToolInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tool input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	tool, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newToolResponse(tool), "Tool updated")
}

// Delete removes a tool.
func (h *ToolHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
