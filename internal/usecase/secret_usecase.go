package usecase

import (
	"context"

	"secrets/internal/domain/entity"
)

// MaxSecretLength caps a secret, counted in characters.
const MaxSecretLength = 1000

// SecretUsecase defines the operations on user secrets.
type SecretUsecase interface {
	// SubmitSecret overwrites the principal's secret. A nil principal yields
	// ErrUnauthorized before the store is touched.
	SubmitSecret(ctx context.Context, principal *entity.User, text string) error

	// ListSecrets returns the text of every submitted secret, without owners.
	ListSecrets(ctx context.Context) ([]string, error)
}
