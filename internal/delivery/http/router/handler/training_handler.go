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

type trainingResponse struct {
	ID            int64      `json:"id"`
	NameFR        string     `json:"name_fr"`
	NameEN        string     `json:"name_en"`
	DescriptionFR string     `json:"description_fr"`
	DescriptionEN string     `json:"description_en"`
	StartDate     *string    `json:"start_date"`
	EndDate       *string    `json:"end_date"`
	Duration      *int       `json:"duration"`
	Status        string     `json:"status"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func newTrainingResponse(training *entity.Training) trainingResponse {
	return trainingResponse{
		ID:            training.ID,
		NameFR:        training.NameFR,
		NameEN:        training.NameEN,
		DescriptionFR: training.DescriptionFR,
		DescriptionEN: training.DescriptionEN,
		StartDate:     training.StartDate,
		EndDate:       training.EndDate,
		Duration:      training.Duration,
		Status:        training.Status,
		CreatedAt:     training.CreatedAt,
		UpdatedAt:     training.UpdatedAt,
	}
}

func newTrainingListResponse(trainings []*entity.Training) []trainingResponse {
	out := make([]trainingResponse, 0, len(trainings))
	for _, t := range trainings {
		out = append(out, newTrainingResponse(t))
	}

	return out
}

// TrainingHandler holds dependencies for training handlers.
type TrainingHandler struct {
	uc     usecase.TrainingUsecase
	logger *slog.Logger
}

// NewTrainingHandler is the constructor for TrainingHandler, injected by Fx.
func NewTrainingHandler(uc usecase.TrainingUsecase, logger *slog.Logger) *TrainingHandler {
	return &TrainingHandler{uc: uc, logger: logger}
}

// List returns every training entry.
func (h *TrainingHandler) List(c echo.Context) error {
	trainings, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTrainingListResponse(trainings), "")
}

// Create handles the training creation request.
func (h *TrainingHandler) Create(c echo.Context) error {
	var input usecase.CreateTrainingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid training input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	training, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newTrainingResponse(training), "Training created")
}

// Update handles a partial update of a training entry.
func (h *TrainingHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.UpdateTrainingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid training input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	training, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTrainingResponse(training), "Training updated")
}

// Delete removes a training entry.
func (h *TrainingHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
