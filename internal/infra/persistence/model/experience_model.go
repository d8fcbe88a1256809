package model

import "time"

// ExperienceModel mirrors the 'experiences' table.
type ExperienceModel struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	CompanyNameFR string     `gorm:"column:company_name_fr;type:varchar(255);not null"`
	CompanyNameEN string     `gorm:"column:company_name_en;type:varchar(255);not null"`
	JobTitleFR    string     `gorm:"column:job_title_fr;type:varchar(255);not null"`
	JobTitleEN    string     `gorm:"column:job_title_en;type:varchar(255);not null"`
	StartDate     *string    `gorm:"type:varchar(50)"`
	EndDate       *string    `gorm:"type:varchar(50)"`
	DescriptionFR *string    `gorm:"column:description_fr;type:text"`
	DescriptionEN *string    `gorm:"column:description_en;type:text"`
	CreatedAt     *time.Time `gorm:"index"`
	UpdatedAt     *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ExperienceModel) TableName() string {
	return "experiences"
}
