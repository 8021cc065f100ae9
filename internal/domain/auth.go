package domain

import "time"

// Identity is the authenticated caller resolved from a token.
type Identity struct {
	UserID int64
}

// Token describes an issued access token.
type Token struct {
	Value     string
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}
