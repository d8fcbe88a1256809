package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type aboutServiceFixtures struct {
	service   usecase.AboutUsecase
	aboutRepo *fakeAboutRepo
	hasher    *fakeHasher
}

func createTestAboutService(t *testing.T) aboutServiceFixtures {
	t.Helper()

	aboutRepo := newFakeAboutRepo()
	hasher := &fakeHasher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAboutService(AboutServiceParams{
		TxManager: &fakeTxManager{factory: &fakeRepoFactory{aboutRepo: aboutRepo}},
		AboutRepo: aboutRepo,
		Hasher:    hasher,
		Logger:    logger,
	})

	return aboutServiceFixtures{service: svc, aboutRepo: aboutRepo, hasher: hasher}
}

func strPtr(s string) *string { return &s }

func TestAboutService_Create_HashesPassword(t *testing.T) {
	fx := createTestAboutService(t)

	about, err := fx.service.Create(context.Background(), usecase.CreateAboutInput{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Name:      "ada",
		Email:     "ada@example.com",
		Password:  "secret",
	})

	require.NoError(t, err)
	assert.NotZero(t, about.ID)
	assert.Equal(t, "hashed:secret", about.PasswordHash)
	assert.NotNil(t, about.CreatedAt)
}

func TestAboutService_Get_NotFound(t *testing.T) {
	fx := createTestAboutService(t)

	about, err := fx.service.Get(context.Background())

	require.Error(t, err)
	assert.Nil(t, about)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAboutService_Update_PartialFields(t *testing.T) {
	fx := createTestAboutService(t)
	created, err := fx.service.Create(context.Background(), usecase.CreateAboutInput{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Name:      "ada",
		Email:     "ada@example.com",
		Password:  "secret",
		City:      strPtr("London"),
	})
	require.NoError(t, err)

	updated, err := fx.service.Update(context.Background(), created.ID, usecase.UpdateAboutInput{
		City: strPtr("Paris"),
	})

	require.NoError(t, err)
	// Only the supplied field changes; everything else is untouched.
	assert.Equal(t, "Paris", *updated.City)
	assert.Equal(t, "ada", updated.Name)
	assert.Equal(t, "hashed:secret", updated.PasswordHash)
}

func TestAboutService_Update_RehashesPassword(t *testing.T) {
	fx := createTestAboutService(t)
	created, err := fx.service.Create(context.Background(), usecase.CreateAboutInput{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Name:      "ada",
		Email:     "ada@example.com",
		Password:  "secret",
	})
	require.NoError(t, err)

	updated, err := fx.service.Update(context.Background(), created.ID, usecase.UpdateAboutInput{
		Password: strPtr("rotated"),
	})

	require.NoError(t, err)
	assert.Equal(t, "hashed:rotated", updated.PasswordHash)
}

func TestAboutService_Update_NotFound(t *testing.T) {
	fx := createTestAboutService(t)

	updated, err := fx.service.Update(context.Background(), 42, usecase.UpdateAboutInput{
		Name: strPtr("ghost"),
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAboutService_Delete(t *testing.T) {
	fx := createTestAboutService(t)
	created, err := fx.service.Create(context.Background(), usecase.CreateAboutInput{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Name:      "ada",
		Email:     "ada@example.com",
		Password:  "secret",
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.Delete(context.Background(), created.ID))

	err = fx.service.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
