package model

import "time"

// TrainingModel mirrors the 'trainings' table. Duration is in years.
type TrainingModel struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	NameFR        string     `gorm:"column:name_fr;type:varchar(255);not null"`
	NameEN        string     `gorm:"column:name_en;type:varchar(255);not null"`
	DescriptionFR string     `gorm:"column:description_fr;type:text;not null"`
	DescriptionEN string     `gorm:"column:description_en;type:text;not null"`
	StartDate     *string    `gorm:"type:varchar(50)"`
	EndDate       *string    `gorm:"type:varchar(50)"`
	Duration      *int
	Status        string     `gorm:"type:varchar(50);not null"`
	CreatedAt     *time.Time `gorm:"index"`
	UpdatedAt     *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (TrainingModel) TableName() string {
	return "trainings"
}
