package entity

import "time"

// Training is a training or certification entry. Duration is expressed
// in years; Status uses the same vocabulary as Project.
type Training struct {
	ID            int64
	NameFR        string
	NameEN        string
	DescriptionFR string
	DescriptionEN string
	StartDate     *string
	EndDate       *string
	Duration      *int
	Status        string
	CreatedAt     *time.Time
	UpdatedAt     *time.Time
}
