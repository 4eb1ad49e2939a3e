// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"secrets/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByGoogleID retrieves the user linked to a Google account.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)

	// FindWithSecret returns every user whose secret is set and non-empty.
	FindWithSecret(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user. A taken username or Google id yields
	// domainerrors.ErrDuplicateUsername.
	Create(ctx context.Context, user *entity.User) error

	// Update saves every field of an existing user (last write wins).
	Update(ctx context.Context, user *entity.User) error
}
