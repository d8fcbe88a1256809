package model

import "time"

// SkillModel mirrors the 'skills' table. Tools are owned: the foreign
// key carries ON DELETE CASCADE so removing a skill removes its tools
// at the store level.
type SkillModel struct {
	ID            int64        `gorm:"primaryKey;autoIncrement"`
	NameFR        string       `gorm:"column:name_fr;type:varchar(255);not null"`
	NameEN        string       `gorm:"column:name_en;type:varchar(255);not null"`
	DescriptionFR *string      `gorm:"column:description_fr;type:text"`
	DescriptionEN *string      `gorm:"column:description_en;type:text"`
	Tools         []*ToolModel `gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE"`
	CreatedAt     *time.Time   `gorm:"index"`
	UpdatedAt     *time.Time   `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SkillModel) TableName() string {
	return "skills"
}
