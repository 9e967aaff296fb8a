// Package models defines the server-side domain types.
package models

import "time"

// User is an account record. PasswordHash is opaque to every layer except
// the user service and is never serialized outward.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
