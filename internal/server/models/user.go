// Package models defines the persistent entities of the notekeeper server.
package models

import "time"

// User is an account row. PasswordHash is the bcrypt verifier; the plaintext
// password is never stored or logged.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
