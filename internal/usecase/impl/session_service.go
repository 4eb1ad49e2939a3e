package impl

import (
	"context"
	"log/slog"
	"time"

	"secrets/config"
	deliverycontext "secrets/internal/delivery/context"
	"secrets/internal/domain/entity"
	domainerrors "secrets/internal/domain/errors"
	"secrets/internal/domain/repository"
	"secrets/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSessionTTL = 14 * 24 * time.Hour

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
	auth        usecase.AuthUsecase
	ttl         time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo repository.SessionRepository
	Auth        usecase.AuthUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	ttl := defaultSessionTTL
	if params.Config != nil && params.Config.Session != nil && params.Config.Session.TTL > 0 {
		ttl = params.Config.Session.TTL
	}

	return &sessionService{
		sessionRepo: params.SessionRepo,
		auth:        params.Auth,
		ttl:         ttl,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login issues a new session id for the user. The previous record is deleted first
// so a session id planted before login can never become authenticated.
func (srv *sessionService) Login(ctx context.Context, current *entity.Session, user *entity.User) (*entity.Session, error) {
	principalID, err := uuid.Parse(srv.auth.Serialize(user))
	if err != nil || principalID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "cannot log in without a stored user")
	}

	if current != nil {
		if err := srv.sessionRepo.Delete(ctx, current.ID); err != nil {
			return nil, errors.Wrap(err, "failed to discard previous session")
		}
	}

	now := srv.now()
	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    &principalID,
		ExpiresAt: now.Add(srv.ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.log(ctx).Debug("Session established", slog.Any("userID", principalID))

	return session, nil
}

// Logout deletes the record and clears the principal on the given session.
func (srv *sessionService) Logout(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return nil
	}

	if err := srv.sessionRepo.Delete(ctx, session.ID); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	session.UserID = nil
	session.ExpiresAt = srv.now()

	return nil
}

// IsAuthenticated is true iff the session is live, bound, and its principal still resolves.
func (srv *sessionService) IsAuthenticated(ctx context.Context, session *entity.Session) bool {
	if session == nil || session.IsExpired(srv.now()) || !session.IsBound() {
		return false
	}

	user, err := srv.auth.Deserialize(ctx, session.UserID.String())
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve session principal", slog.Any("error", err))

		return false
	}

	return user != nil
}

// Restore loads the session record and resolves its principal.
func (srv *sessionService) Restore(ctx context.Context, sessionID uuid.UUID) (*entity.Session, *entity.User, error) {
	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load session")
	}
	if session.IsExpired(srv.now()) || !session.IsBound() {
		return nil, nil, nil
	}

	user, err := srv.auth.Deserialize(ctx, session.UserID.String())
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		// The principal is gone; the record can never authenticate again.
		if err := srv.sessionRepo.Delete(ctx, session.ID); err != nil {
			srv.log(ctx).Warn("Failed to delete dangling session", slog.Any("error", err))
		}

		return nil, nil, nil
	}

	return session, user, nil
}

// CleanupExpiredSessions removes every record that expired before now.
func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) (int, error) {
	removed, err := srv.sessionRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired sessions")
	}
	if removed > 0 {
		srv.log(ctx).Info("Removed expired sessions", slog.Int("count", removed))
	}

	return removed, nil
}
