package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "secrets/internal/delivery/context"
	"secrets/internal/domain/entity"
	domainerrors "secrets/internal/domain/errors"
	"secrets/internal/domain/repository"
	"secrets/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// secretService implements the SecretUsecase interface.
type secretService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// SecretServiceParams holds dependencies for SecretService, injected by Fx.
type SecretServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewSecretService is the constructor for secretService.
func NewSecretService(params SecretServiceParams) usecase.SecretUsecase {
	return &secretService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *secretService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitSecret reloads the principal and overwrites its secret.
func (srv *secretService) SubmitSecret(ctx context.Context, principal *entity.User, text string) error {
	if principal == nil || principal.ID == uuid.Nil {
		return errors.Wrap(domainerrors.ErrUnauthorized, "secret submitted without a signed-in user")
	}

	if strings.TrimSpace(text) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "secret is empty")
	}
	if utf8.RuneCountInString(text) > usecase.MaxSecretLength {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "secret exceeds %d characters", usecase.MaxSecretLength)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, principal.ID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUnauthorized, "signed-in user no longer exists")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load user")
		}

		secret := text
		user.Secret = &secret

		return errors.Wrap(userRepo.Update(ctx, user), "failed to save secret")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to submit secret", slog.Any("userID", principal.ID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Secret submitted", slog.Any("userID", principal.ID))

	return nil
}

// ListSecrets returns the texts of all non-empty secrets.
func (srv *secretService) ListSecrets(ctx context.Context) ([]string, error) {
	users, err := srv.userRepo.FindWithSecret(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list secrets", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list secrets")
	}

	secrets := make([]string, 0, len(users))
	for _, user := range users {
		if text := user.SecretText(); text != "" {
			secrets = append(secrets, text)
		}
	}

	return secrets, nil
}
