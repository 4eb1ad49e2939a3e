// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "secrets/internal/delivery/context"
	"secrets/internal/domain/entity"
	domainerrors "secrets/internal/domain/errors"
	"secrets/internal/domain/repository"
	"secrets/internal/domain/service"
	"secrets/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	oauthService service.OAuthService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	OAuthService service.OAuthService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		oauthService: params.OAuthService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterLocal checks the username and creates the user inside one transaction.
func (srv *authService) RegisterLocal(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "username and password are required")
	}
	if len(password) > MaxPasswordBytes {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "password longer than %d bytes", MaxPasswordBytes)
	}

	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var registered *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByUsername(ctx, username)
		if err == nil {
			return domainerrors.ErrDuplicateUsername.WrapMessage("username already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up username")
		}

		newUser := &entity.User{
			Username:     username,
			PasswordHash: hashedPassword,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}
		registered = newUser

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateUsername) {
			srv.log(ctx).Info("Registration rejected, username taken", slog.String("username", username))
		} else {
			srv.log(ctx).Error("Failed to execute registration transaction", slog.String("username", username), slog.Any("error", err))
		}

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registered.ID))

	return registered, nil
}

// AuthenticateLocal verifies the password against the stored bcrypt hash.
func (srv *authService) AuthenticateLocal(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "missing username or password")
	}
	if len(password) > MaxPasswordBytes {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password too long")
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Login failed, unknown username", slog.String("username", username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "user not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by username")
	}

	// Google-only accounts have no password to check.
	if !user.HasPassword() || !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Info("Login failed, password mismatch", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	return user, nil
}

// AuthenticateGoogle finds the user by Google subject or creates one named after the profile email.
func (srv *authService) AuthenticateGoogle(ctx context.Context, profile *entity.ExternalProfile) (*entity.User, error) {
	if profile == nil || profile.ProviderID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "google profile has no subject")
	}

	user, err := srv.userRepo.FindByGoogleID(ctx, profile.ProviderID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by google id")
	}

	googleID := profile.ProviderID
	newUser := &entity.User{
		Username: googleUsername(profile),
		GoogleID: &googleID,
	}

	err = srv.userRepo.Create(ctx, newUser)
	if err == nil {
		srv.log(ctx).Info("Created user from Google profile",
			slog.Any("userID", newUser.ID),
			slog.String("displayName", profile.Name),
		)

		return newUser, nil
	}
	if !errors.Is(err, domainerrors.ErrDuplicateUsername) {
		return nil, errors.Wrap(err, "failed to create user from google profile")
	}

	// A concurrent callback for the same account may have created it first.
	user, findErr := srv.userRepo.FindByGoogleID(ctx, profile.ProviderID)
	if findErr == nil {
		return user, nil
	}

	srv.log(ctx).Warn("Google sign-in collides with an existing username", slog.String("username", newUser.Username))

	return nil, err
}

func googleUsername(profile *entity.ExternalProfile) string {
	if email := strings.TrimSpace(profile.Email); email != "" {
		return email
	}

	return "google:" + profile.ProviderID
}

// Authenticate dispatches on the closed set of credential strategies.
func (srv *authService) Authenticate(ctx context.Context, strategy entity.CredentialStrategy) (*entity.User, error) {
	switch creds := strategy.(type) {
	case entity.LocalCredentials:
		return srv.AuthenticateLocal(ctx, creds.Username, creds.Password)
	case *entity.LocalCredentials:
		return srv.AuthenticateLocal(ctx, creds.Username, creds.Password)
	case entity.GoogleCredentials:
		return srv.authenticateGoogleCode(ctx, creds.Code)
	case *entity.GoogleCredentials:
		return srv.authenticateGoogleCode(ctx, creds.Code)
	default:
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unsupported credential strategy %T", strategy)
	}
}

func (srv *authService) authenticateGoogleCode(ctx context.Context, code string) (*entity.User, error) {
	profile, err := srv.oauthService.Exchange(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("Google code exchange failed", slog.Any("error", err))
		if errors.Is(err, domainerrors.ErrOAuthExchangeFailure) {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrOAuthExchangeFailure, err.Error())
	}

	return srv.AuthenticateGoogle(ctx, profile)
}

// Serialize stores only the user id in the session.
func (srv *authService) Serialize(user *entity.User) string {
	if user == nil {
		return ""
	}

	return user.ID.String()
}

// Deserialize resolves a principal id back to its user.
func (srv *authService) Deserialize(ctx context.Context, principalID string) (*entity.User, error) {
	id, err := uuid.Parse(principalID)
	if err != nil || id == uuid.Nil {
		return nil, nil
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve session principal")
	}

	return user, nil
}
