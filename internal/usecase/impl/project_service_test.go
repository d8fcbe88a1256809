package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProjectService(t *testing.T) (usecase.ProjectUsecase, *fakeProjectRepo) {
	t.Helper()

	projectRepo := newFakeProjectRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewProjectService(ProjectServiceParams{
		TxManager:   &fakeTxManager{factory: &fakeRepoFactory{projectRepo: projectRepo}},
		ProjectRepo: projectRepo,
		Logger:      logger,
	})

	return svc, projectRepo
}

func TestProjectService_List_Empty(t *testing.T) {
	svc, _ := createTestProjectService(t)

	projects, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, projects)
	assert.NotNil(t, projects)
}

func TestProjectService_Create_DefaultStatus(t *testing.T) {
	svc, _ := createTestProjectService(t)

	project, err := svc.Create(context.Background(), usecase.CreateProjectInput{
		NameFR: "Portfolio",
		NameEN: "Portfolio",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ProjectStatusPending, project.Status)
	assert.NotZero(t, project.ID)
}

func TestProjectService_Create_ExplicitStatus(t *testing.T) {
	svc, _ := createTestProjectService(t)

	status := entity.ProjectStatusInProgress
	project, err := svc.Create(context.Background(), usecase.CreateProjectInput{
		NameFR: "Portfolio",
		NameEN: "Portfolio",
		Status: &status,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ProjectStatusInProgress, project.Status)
}

func TestProjectService_Update_PartialFields(t *testing.T) {
	svc, _ := createTestProjectService(t)
	created, err := svc.Create(context.Background(), usecase.CreateProjectInput{
		NameFR:        "Portfolio",
		NameEN:        "Portfolio",
		DescriptionEN: strPtr("A personal site"),
	})
	require.NoError(t, err)

	status := entity.ProjectStatusCompleted
	updated, err := svc.Update(context.Background(), created.ID, usecase.UpdateProjectInput{
		Status: &status,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ProjectStatusCompleted, updated.Status)
	assert.Equal(t, "Portfolio", updated.NameEN)
	assert.Equal(t, "A personal site", *updated.DescriptionEN)
}

func TestProjectService_Update_NotFound(t *testing.T) {
	svc, _ := createTestProjectService(t)

	updated, err := svc.Update(context.Background(), 7, usecase.UpdateProjectInput{
		NameFR: strPtr("ghost"),
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	svc, _ := createTestProjectService(t)

	err := svc.Delete(context.Background(), 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
