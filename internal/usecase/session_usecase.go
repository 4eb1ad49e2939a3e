package usecase

import (
	"context"

	"secrets/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	// Login binds a fresh session to the user. The current session, if any, is discarded.
	Login(ctx context.Context, current *entity.Session, user *entity.User) (*entity.Session, error)

	// Logout destroys the session. A nil session is a no-op.
	Logout(ctx context.Context, session *entity.Session) error

	// IsAuthenticated reports whether the session has a bound principal that still resolves.
	IsAuthenticated(ctx context.Context, session *entity.Session) bool

	// Restore loads the session and its principal. Unknown or expired ids and
	// dangling principals yield nil values without error.
	Restore(ctx context.Context, sessionID uuid.UUID) (*entity.Session, *entity.User, error)

	// CleanupExpiredSessions removes expired session records and returns how many were removed.
	CleanupExpiredSessions(ctx context.Context) (int, error)
}
