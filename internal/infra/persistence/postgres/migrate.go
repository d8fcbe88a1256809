package postgres

import (
	"portfolio/internal/errors"
	"portfolio/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the portfolio tables. Skills migrate before
// tools so the cascading foreign key can be created.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.AboutModel{},
		&model.ContactModel{},
		&model.ExperienceModel{},
		&model.ProjectModel{},
		&model.SkillModel{},
		&model.ToolModel{},
		&model.TrainingModel{},
	)

	return errors.Wrap(err, "auto migration failed")
}
