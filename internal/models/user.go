package models

import "time"

// User is the persistence model for the users table.
type User struct {
	ID             int64
	Username       string
	HashedPassword string
	Role           string
	DisplayName    string
	CreatedAt      time.Time
}
