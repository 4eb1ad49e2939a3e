package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session ties a browser cookie to an authenticated principal.
// Only the principal's id is stored; the user is resolved on every request.
type Session struct {
	ID        uuid.UUID
	UserID    *uuid.UUID // Serialized principal. Nil means the session is anonymous.
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired reports whether the session is past its expiry at the given instant.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// IsBound reports whether a principal is attached to the session.
func (s *Session) IsBound() bool {
	return s.UserID != nil && *s.UserID != uuid.Nil
}
