package service

import (
	"context"

	"secrets/internal/domain/entity"
)

// OAuthService drives the authorization-code flow against an external provider.
type OAuthService interface {
	// AuthorizationURL builds the consent screen URL carrying the given state.
	AuthorizationURL(state string) string

	// Exchange trades an authorization code for the user's external profile.
	Exchange(ctx context.Context, code string) (*entity.ExternalProfile, error)
}
