package entity

import "time"

// Skill groups a set of Tools under one competency. A Skill owns its
// Tools: deleting the Skill removes them as well.
type Skill struct {
	ID            int64
	NameFR        string
	NameEN        string
	DescriptionFR *string
	DescriptionEN *string
	Tools         []*Tool
	CreatedAt     *time.Time
	UpdatedAt     *time.Time
}
