// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the only persisted account type. A user signs in either with a local
// password or through Google, and owns at most one secret.
type User struct {
	ID           uuid.UUID // Store-assigned identifier; also the serialized session principal.
	Username     string    // Unique login name. Email-shaped in practice, never validated as one.
	PasswordHash string    // bcrypt hash, empty for Google-only accounts.
	GoogleID     *string   // Google 'sub' claim, nil for local accounts.
	Secret       *string   // The user's single secret. Nil until first submission.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether the user can sign in with the local strategy.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// SecretText returns the secret or an empty string when none was submitted.
func (u *User) SecretText() string {
	if u.Secret == nil {
		return ""
	}

	return *u.Secret
}
