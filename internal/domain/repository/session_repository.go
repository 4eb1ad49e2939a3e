package repository

import (
	"context"
	"errors"
	"time"

	"secrets/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session id is unknown or already expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists server-side session state keyed by session id.
type SessionRepository interface {
	// Create stores a new session record.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID returns an unexpired session or ErrSessionNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// Delete removes a session. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes sessions that expired before the given instant
	// and returns how many were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int, error)
}
