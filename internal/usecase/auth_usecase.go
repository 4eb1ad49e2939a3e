// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"secrets/internal/domain/entity"
)

// AuthUsecase verifies credentials and maps principals to and from session state.
// This is the contract that the delivery layer will depend on.
type AuthUsecase interface {
	// RegisterLocal creates a password user. A taken username yields ErrDuplicateUsername.
	RegisterLocal(ctx context.Context, username, password string) (*entity.User, error)

	// AuthenticateLocal verifies a username and password. Any mismatch yields ErrInvalidCredentials.
	AuthenticateLocal(ctx context.Context, username, password string) (*entity.User, error)

	// AuthenticateGoogle finds the user linked to the profile or creates one.
	AuthenticateGoogle(ctx context.Context, profile *entity.ExternalProfile) (*entity.User, error)

	// Authenticate dispatches on the concrete credential strategy.
	Authenticate(ctx context.Context, strategy entity.CredentialStrategy) (*entity.User, error)

	// Serialize returns the principal id stored in the session.
	Serialize(user *entity.User) string

	// Deserialize resolves a principal id. It returns nil without error when the
	// id is malformed or no longer names a user.
	Deserialize(ctx context.Context, principalID string) (*entity.User, error)
}
