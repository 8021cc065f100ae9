package domain

import "time"

// User is a registered account able to own patient and doctor records.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
