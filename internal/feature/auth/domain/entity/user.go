// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// A user is created on registration and never mutated afterwards.
type User struct {
	// ID is the opaque unique identifier for the user (UUID string).
	ID string `gorm:"primaryKey;size:36"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users; the store enforces this with a
	// unique index so concurrent registrations cannot both succeed.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Name is the display name supplied at registration.
	Name string `gorm:"size:255;not null"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This never stores plaintext passwords.
	PasswordHash string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time
}

// Sanitized returns a copy of the user with the password hash stripped,
// suitable for attaching to a request context or rendering to clients.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
