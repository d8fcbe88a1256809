// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// About holds the portfolio owner's profile and doubles as the single
// credentialed account used for login. Name and Email are both accepted
// as login identifiers; PasswordHash is the bcrypt digest of the
// account password and is never exposed through the API.
type About struct {
	ID              int64
	ProfileImage    *string
	ProfileImageURL *string
	Firstname       string
	Lastname        string
	Name            string
	Email           string
	PasswordHash    string
	Phone           *string
	Address         *string
	City            *string
	Country         *string
	AboutMeFR       *string
	AboutMeEN       *string
	JobTitleFR      *string
	JobTitleEN      *string
	DescriptionFR   *string
	DescriptionEN   *string
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
}
