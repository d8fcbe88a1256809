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

type contactResponse struct {
	ID        int64      `json:"id"`
	Instagram *string    `json:"instagram"`
	LinkedIn  *string    `json:"linkedin"`
	X         *string    `json:"x"`
	GitHub    *string    `json:"github"`
	Resume    *string    `json:"resume"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func newContactResponse(contact *entity.Contact) contactResponse {
	return contactResponse{
		ID:        contact.ID,
		Instagram: contact.Instagram,
		LinkedIn:  contact.LinkedIn,
		X:         contact.X,
		GitHub:    contact.GitHub,
		Resume:    contact.Resume,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
}

// ContactHandler holds dependencies for contact-links handlers.
type ContactHandler struct {
	uc     usecase.ContactUsecase
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{uc: uc, logger: logger}
}

// Get returns the singleton contact-links record.
func (h *ContactHandler) Get(c echo.Context) error {
	contact, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newContactResponse(contact), "")
}

// Create handles the contact-links creation request.
func (h *ContactHandler) Create(c echo.Context) error {
	var input usecase.CreateContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	contact, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newContactResponse(contact), "Contact created")
}

// Update handles a partial update of the contact-links record.
func (h *ContactHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.UpdateContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	contact, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newContactResponse(contact), "Contact updated")
}

// Delete removes the contact-links record.
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
