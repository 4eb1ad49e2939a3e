package service

import (
	"time"

	"github.com/google/uuid"
)

// CookieSigner seals values placed in browser cookies so they cannot be forged.
type CookieSigner interface {
	// SignSession wraps a session id in a signed token valid until expiresAt.
	SignSession(sessionID uuid.UUID, expiresAt time.Time) (string, error)

	// VerifySession returns the session id carried by a token produced by SignSession.
	VerifySession(token string) (uuid.UUID, error)

	// SignState seals an OAuth state nonce for the short-lived state cookie.
	SignState(state string, ttl time.Duration) (string, error)

	// VerifyState returns the nonce carried by a token produced by SignState.
	VerifyState(token string) (string, error)
}
