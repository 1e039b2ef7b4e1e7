// Package entity defines the core business entities of the ledger.
package entity

import "time"

// User represents an account holder in the ledger.
//
// Email uniqueness is assumed rather than enforced: lookups return the first
// match in store order and registration does not reject duplicates.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser creates a new User entity. The ID is assigned by the repository
// when the user is persisted.
func NewUser(name, email, passwordHash string, createdAt time.Time) *User {
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
	}
}
