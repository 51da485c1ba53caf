// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a vault account. Accounts are never deleted.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}
