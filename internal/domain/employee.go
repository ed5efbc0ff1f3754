package domain

import "time"

// Employee is the directory's sole persisted entity. PasswordHash is the
// bcrypt digest of the login password; the plaintext is never stored.
type Employee struct {
	ID           int64
	Name         string
	Email        string
	Designation  string
	Salary       float64
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
