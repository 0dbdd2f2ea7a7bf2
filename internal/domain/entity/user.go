// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects, User and Article, along with their
// validation rules and domain-specific errors.
package entity

import "time"

// User represents a registered account in the system.
// PasswordHash holds the bcrypt digest of the user's password and is never
// serialized to clients.
type User struct {
	ID           int64
	Nome         string
	Sobrenome    string
	Email        string
	PasswordHash string
	Admin        bool
	CreatedAt    time.Time
}
