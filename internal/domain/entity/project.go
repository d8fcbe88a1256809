package entity

import "time"

// Project statuses as stored in the status column.
const (
	ProjectStatusPending    = "pending"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusFailed     = "failed"
)

// Project is a portfolio project entry.
type Project struct {
	ID            int64
	NameFR        string
	NameEN        string
	DescriptionFR *string
	DescriptionEN *string
	StartDate     *string
	EndDate       *string
	Status        string
	CreatedAt     *time.Time
	UpdatedAt     *time.Time
}
