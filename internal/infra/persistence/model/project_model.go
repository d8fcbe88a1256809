package model

import "time"

// ProjectModel mirrors the 'projects' table.
type ProjectModel struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	NameFR        string     `gorm:"column:name_fr;type:varchar(255);not null"`
	NameEN        string     `gorm:"column:name_en;type:varchar(255);not null"`
	DescriptionFR *string    `gorm:"column:description_fr;type:text"`
	DescriptionEN *string    `gorm:"column:description_en;type:text"`
	StartDate     *string    `gorm:"type:varchar(50)"`
	EndDate       *string    `gorm:"type:varchar(50)"`
	Status        string     `gorm:"type:varchar(50);not null"`
	CreatedAt     *time.Time `gorm:"index"`
	UpdatedAt     *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}
