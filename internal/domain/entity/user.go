package entity

import "time"

// User is the account identity. Password holds a bcrypt hash, never plaintext.
type User struct {
	ID        string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
