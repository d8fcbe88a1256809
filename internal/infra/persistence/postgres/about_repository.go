package postgres

import (
	"context"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// aboutRepository implements the domain.AboutRepository interface using GORM.
type aboutRepository struct {
	db *gorm.DB
}

// NewAboutRepository is the constructor for aboutRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAboutRepository(db *gorm.DB) repository.AboutRepository {
	return &aboutRepository{db: db}
}

// First retrieves the singleton about record, ordered by primary key.
func (repo *aboutRepository) First(ctx context.Context) (*entity.About, error) {
	var aboutM model.AboutModel
	if err := repo.db.WithContext(ctx).First(&aboutM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAboutNotFound
		}

		return nil, errors.Wrap(err, "failed to find about")
	}

	return toAboutDomain(&aboutM), nil
}

// FindByID retrieves a single about record by its unique ID.
func (repo *aboutRepository) FindByID(ctx context.Context, id int64) (*entity.About, error) {
	var aboutM model.AboutModel
	if err := repo.db.WithContext(ctx).First(&aboutM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAboutNotFound
		}

		return nil, errors.Wrap(err, "failed to find about by id")
	}

	return toAboutDomain(&aboutM), nil
}

// FindByIdentifier retrieves the first about record whose name or email
// matches the identifier. Both columns are checked so the login flow can
// accept either one.
func (repo *aboutRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.About, error) {
	var aboutM model.AboutModel
	err := repo.db.WithContext(ctx).
		Where("name = ?", identifier).
		Or("email = ?", identifier).
		First(&aboutM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAboutNotFound
		}

		return nil, errors.Wrap(err, "failed to find about by identifier")
	}

	return toAboutDomain(&aboutM), nil
}

// Create persists a new about record to the database.
func (repo *aboutRepository) Create(ctx context.Context, about *entity.About) error {
	aboutM := fromAboutDomain(about)

	if err := repo.db.WithContext(ctx).Create(aboutM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("about already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required about information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create about")
	}

	// Backfill the generated ID and timestamps on the entity.
	about.ID = aboutM.ID
	about.CreatedAt = aboutM.CreatedAt
	about.UpdatedAt = aboutM.UpdatedAt

	return nil
}

// Save writes all fields of an existing about record.
func (repo *aboutRepository) Save(ctx context.Context, about *entity.About) error {
	aboutM := fromAboutDomain(about)

	result := repo.db.WithContext(ctx).Save(aboutM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("about already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required about information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save about")
	}

	about.UpdatedAt = aboutM.UpdatedAt

	return nil
}

// Delete removes the about record with the given ID.
func (repo *aboutRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.AboutModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete about")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAboutNotFound
	}

	return nil
}

// toAboutDomain maps the persistence model back to a pure domain entity.
func toAboutDomain(m *model.AboutModel) *entity.About {
	return &entity.About{
		ID:              m.ID,
		ProfileImage:    m.ProfileImage,
		ProfileImageURL: m.ProfileImageURL,
		Firstname:       m.Firstname,
		Lastname:        m.Lastname,
		Name:            m.Name,
		Email:           m.Email,
		PasswordHash:    m.Password,
		Phone:           m.Phone,
		Address:         m.Address,
		City:            m.City,
		Country:         m.Country,
		AboutMeFR:       m.AboutMeFR,
		AboutMeEN:       m.AboutMeEN,
		JobTitleFR:      m.JobTitleFR,
		JobTitleEN:      m.JobTitleEN,
		DescriptionFR:   m.DescriptionFR,
		DescriptionEN:   m.DescriptionEN,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// fromAboutDomain maps a pure domain entity to the persistence model.
func fromAboutDomain(e *entity.About) *model.AboutModel {
	return &model.AboutModel{
		ID:              e.ID,
		ProfileImage:    e.ProfileImage,
		ProfileImageURL: e.ProfileImageURL,
		Firstname:       e.Firstname,
		Lastname:        e.Lastname,
		Name:            e.Name,
		Email:           e.Email,
		Password:        e.PasswordHash,
		Phone:           e.Phone,
		Address:         e.Address,
		City:            e.City,
		Country:         e.Country,
		AboutMeFR:       e.AboutMeFR,
		AboutMeEN:       e.AboutMeEN,
		JobTitleFR:      e.JobTitleFR,
		JobTitleEN:      e.JobTitleEN,
		DescriptionFR:   e.DescriptionFR,
		DescriptionEN:   e.DescriptionEN,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
