package entity

import "time"

// Experience is a single professional experience entry with bilingual
// company and job title text.
type Experience struct {
	ID            int64
	CompanyNameFR string
	CompanyNameEN string
	JobTitleFR    string
	JobTitleEN    string
	StartDate     *string
	EndDate       *string
	DescriptionFR *string
	DescriptionEN *string
	CreatedAt     *time.Time
	UpdatedAt     *time.Time
}
