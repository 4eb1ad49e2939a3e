package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"secrets/config"
	deliverycontext "secrets/internal/delivery/context"
	"secrets/internal/domain/entity"
	"secrets/internal/domain/service"
	"secrets/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddleware restores the session named by the signed session cookie and
// owns the cookie's lifecycle.
type AuthMiddleware struct {
	signer     service.CookieSigner
	sessionUC  usecase.SessionUsecase
	cookieName string
	secure     bool
	logger     *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Signer    service.CookieSigner
	SessionUC usecase.SessionUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		signer:     params.Signer,
		sessionUC:  params.SessionUC,
		cookieName: params.Config.Session.CookieName,
		secure:     params.Config.Session.Secure,
		logger:     params.Logger,
	}
}

// Authenticate loads the session and principal into the echo.Context.
// It never rejects a request: anything that does not restore cleanly leaves
// the request anonymous.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		sessionID, err := m.signer.VerifySession(cookie.Value)
		if err != nil {
			m.ClearSessionCookie(c)

			return next(c)
		}

		ctx := c.Request().Context()
		session, user, err := m.sessionUC.Restore(ctx, sessionID)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Failed to restore session, continuing anonymously",
				slog.String("session_id", sessionID.String()),
				slog.Any("error", err),
			)

			return next(c)
		}

		if session == nil {
			m.ClearSessionCookie(c)

			return next(c)
		}

		deliverycontext.SetSession(c, session)
		if user != nil {
			deliverycontext.SetUser(c, user)
		}

		return next(c)
	}
}

// WriteSessionCookie sets the signed cookie for the session.
func (m *AuthMiddleware) WriteSessionCookie(c echo.Context, session *entity.Session) error {
	value, err := m.signer.SignSession(session.ID, session.ExpiresAt)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// ClearSessionCookie expires the session cookie in the browser.
func (m *AuthMiddleware) ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
