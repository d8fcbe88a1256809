package model

import "time"

// ToolModel mirrors the 'tools' table. SkillID references skills.id.
type ToolModel struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	NameFR        string     `gorm:"column:name_fr;type:varchar(255);not null"`
	NameEN        string     `gorm:"column:name_en;type:varchar(255);not null"`
	DescriptionFR *string    `gorm:"column:description_fr;type:text"`
	DescriptionEN *string    `gorm:"column:description_en;type:text"`
	SkillID       *int64     `gorm:"index"`
	CreatedAt     *time.Time `gorm:"index"`
	UpdatedAt     *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ToolModel) TableName() string {
	return "tools"
}
