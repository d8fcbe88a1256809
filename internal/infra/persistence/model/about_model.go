// Package model contains the GORM persistence models mirroring the
// database tables. They are mapped to and from pure domain entities by
// the repositories; nothing outside the persistence layer touches them.
package model

import "time"

// AboutModel mirrors the 'abouts' table. The password column stores a
// bcrypt digest, never a plaintext password.
type AboutModel struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	ProfileImage    *string `gorm:"type:text"`
	ProfileImageURL *string `gorm:"type:text"`
	Firstname       string  `gorm:"type:varchar(100)"`
	Lastname        string  `gorm:"type:varchar(100)"`
	Name            string  `gorm:"type:varchar(100);not null"`
	Email           string  `gorm:"type:varchar(255)"`
	Password        string  `gorm:"type:varchar(255)"`
	Phone           *string `gorm:"type:varchar(50)"`
	Address         *string `gorm:"type:text"`
	City            *string `gorm:"type:varchar(100)"`
	Country         *string `gorm:"type:varchar(100)"`
	AboutMeFR       *string `gorm:"column:about_me_fr;type:text"`
	AboutMeEN       *string `gorm:"column:about_me_en;type:text"`
	JobTitleFR      *string `gorm:"column:job_title_fr;type:varchar(255)"`
	JobTitleEN      *string `gorm:"column:job_title_en;type:varchar(255)"`
	DescriptionFR   *string `gorm:"column:description_fr;type:text"`
	DescriptionEN   *string `gorm:"column:description_en;type:text"`
	CreatedAt       *time.Time `gorm:"index"`
	UpdatedAt       *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AboutModel) TableName() string {
	return "abouts"
}
