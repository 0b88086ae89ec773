package domain

import "time"

// User is the domain model for marketplace accounts. Email and phone are
// unique across all users; PasswordHash never leaves the service layer.
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
