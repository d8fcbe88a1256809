package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProjectUsecase struct {
	projects  []*entity.Project
	created   *entity.Project
	updateErr error
}

func (f *fakeProjectUsecase) List(context.Context) ([]*entity.Project, error) {
	return f.projects, nil
}

func (f *fakeProjectUsecase) Create(_ context.Context, input usecase.CreateProjectInput) (*entity.Project, error) {
	status := entity.ProjectStatusPending
	if input.Status != nil {
		status = *input.Status
	}
	f.created = &entity.Project{ID: 1, NameFR: input.NameFR, NameEN: input.NameEN, Status: status}

	return f.created, nil
}

func (f *fakeProjectUsecase) Update(context.Context, int64, usecase.UpdateProjectInput) (*entity.Project, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}

	return &entity.Project{ID: 1}, nil
}

func (f *fakeProjectUsecase) Delete(context.Context, int64) error { return nil }

func newProjectTestServer(t *testing.T, uc usecase.ProjectUsecase) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewProjectHandler(uc, logger)

	e := newTestEcho(t)
	e.GET("/project/", h.List)
	e.POST("/project/create", h.Create)
	e.PUT("/project/update/:id", h.Update)

	return e
}

func TestProjectHandler_List_EmptyStore(t *testing.T) {
	e := newProjectTestServer(t, &fakeProjectUsecase{projects: []*entity.Project{}})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/project/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	// An empty store is a 200 with an empty list, never a 404.
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
}

func TestProjectHandler_Create(t *testing.T) {
	uc := &fakeProjectUsecase{}
	e := newProjectTestServer(t, uc)

	req := httptest.NewRequest(http.MethodPost, "/project/create",
		strings.NewReader(`{"name_fr":"Portfolio","name_en":"Portfolio"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.created)
	assert.Equal(t, entity.ProjectStatusPending, uc.created.Status)
}

func TestProjectHandler_Create_MissingName(t *testing.T) {
	e := newProjectTestServer(t, &fakeProjectUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/project/create",
		strings.NewReader(`{"name_fr":"Portfolio"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestProjectHandler_Update_InvalidID(t *testing.T) {
	e := newProjectTestServer(t, &fakeProjectUsecase{})

	req := httptest.NewRequest(http.MethodPut, "/project/update/abc",
		strings.NewReader(`{"name_fr":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectHandler_Update_NotFound(t *testing.T) {
	e := newProjectTestServer(t, &fakeProjectUsecase{
		updateErr: domainerrors.ErrNotFound.WrapMessage("project not found"),
	})

	req := httptest.NewRequest(http.MethodPut, "/project/update/9",
		strings.NewReader(`{"name_fr":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}
