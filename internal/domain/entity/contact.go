package entity

import "time"

// Contact is the singleton record of external links shown on the
// portfolio (social profiles and a downloadable resume).
type Contact struct {
	ID        int64
	Instagram *string
	LinkedIn  *string
	X         *string
	GitHub    *string
	Resume    *string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}
