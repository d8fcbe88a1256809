package entity

import "time"

// Tool is a concrete technology attached to a Skill through SkillID.
type Tool struct {
	ID            int64
	NameFR        string
	NameEN        string
	DescriptionFR *string
	DescriptionEN *string
	SkillID       *int64
	CreatedAt     *time.Time
	UpdatedAt     *time.Time
}
