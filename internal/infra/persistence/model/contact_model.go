package model

import "time"

// ContactModel mirrors the 'contacts' table.
type ContactModel struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Instagram *string    `gorm:"type:text"`
	LinkedIn  *string    `gorm:"column:linkedin;type:text"`
	X         *string    `gorm:"type:text"`
	GitHub    *string    `gorm:"column:github;type:text"`
	Resume    *string    `gorm:"type:text"`
	CreatedAt *time.Time `gorm:"index"`
	UpdatedAt *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
