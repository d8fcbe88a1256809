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

func createTestSkillService(t *testing.T) (usecase.SkillUsecase, *fakeSkillRepo, *fakeToolRepo) {
	t.Helper()

	toolRepo := newFakeToolRepo()
	skillRepo := newFakeSkillRepo()
	skillRepo.tools = toolRepo
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewSkillService(SkillServiceParams{
		TxManager: &fakeTxManager{factory: &fakeRepoFactory{skillRepo: skillRepo, toolRepo: toolRepo}},
		SkillRepo: skillRepo,
		Logger:    logger,
	})

	return svc, skillRepo, toolRepo
}

func TestSkillService_CreateAndList(t *testing.T) {
	svc, _, _ := createTestSkillService(t)

	created, err := svc.Create(context.Background(), usecase.CreateSkillInput{
		NameFR:        "Bases de données",
		NameEN:        "Databases",
		DescriptionEN: strPtr("Relational stores"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	skills, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Databases", skills[0].NameEN)
}

func TestSkillService_Update_PartialFields(t *testing.T) {
	svc, _, _ := createTestSkillService(t)
	created, err := svc.Create(context.Background(), usecase.CreateSkillInput{
		NameFR: "Bases de données",
		NameEN: "Databases",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, usecase.UpdateSkillInput{
		NameEN: strPtr("Data stores"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Data stores", updated.NameEN)
	assert.Equal(t, "Bases de données", updated.NameFR)
}

func TestSkillService_Delete(t *testing.T) {
	svc, skillRepo, _ := createTestSkillService(t)
	created, err := svc.Create(context.Background(), usecase.CreateSkillInput{
		NameFR: "Bases de données",
		NameEN: "Databases",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Equal(t, []int64{created.ID}, skillRepo.deletedIDs)

	skills, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestSkillService_Delete_CascadesTools(t *testing.T) {
	svc, _, toolRepo := createTestSkillService(t)
	doomed, err := svc.Create(context.Background(), usecase.CreateSkillInput{
		NameFR: "Bases de données",
		NameEN: "Databases",
	})
	require.NoError(t, err)
	survivor, err := svc.Create(context.Background(), usecase.CreateSkillInput{
		NameFR: "Développement web",
		NameEN: "Web development",
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, toolRepo.Create(ctx, &entity.Tool{NameFR: "PostgreSQL", NameEN: "PostgreSQL", SkillID: &doomed.ID}))
	require.NoError(t, toolRepo.Create(ctx, &entity.Tool{NameFR: "SQLAlchemy", NameEN: "SQLAlchemy", SkillID: &doomed.ID}))
	require.NoError(t, toolRepo.Create(ctx, &entity.Tool{NameFR: "Echo", NameEN: "Echo", SkillID: &survivor.ID}))

	require.NoError(t, svc.Delete(ctx, doomed.ID))

	// Only the tool owned by the surviving skill is left.
	remaining, err := toolRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Echo", remaining[0].NameEN)
	assert.Equal(t, survivor.ID, *remaining[0].SkillID)
}

func TestSkillService_Delete_NotFound(t *testing.T) {
	svc, _, _ := createTestSkillService(t)

	err := svc.Delete(context.Background(), 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
