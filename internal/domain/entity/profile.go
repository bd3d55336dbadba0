package entity

import "time"

// Profile carries a user's display data. Exactly one profile exists per user.
type Profile struct {
	ID        string
	UserID    string
	FirstName string
	LastName  string
	ImageURL  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName combines first and last name for display purposes.
func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
