package handler

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"secrets/config"
	deliverycontext "secrets/internal/delivery/context"
	"secrets/internal/delivery/http/middleware"
	"secrets/internal/delivery/http/response"
	"secrets/internal/delivery/http/view"
	"secrets/internal/domain/entity"
	domainerrors "secrets/internal/domain/errors"
	"secrets/internal/domain/service"
	"secrets/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	stateCookieName = "oauth_state"
	stateCookiePath = "/auth/google"
	stateTTL        = 10 * time.Minute
	stateBytes      = 32
)

// credentialsForm is the body of POST /register and POST /login.
type credentialsForm struct {
	Username string `form:"username" validate:"required,notblank"`
	Password string `form:"password" validate:"required"`
}

// AuthHandler holds dependencies for sign-in related handlers.
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	sessionUC usecase.SessionUsecase
	oauth     service.OAuthService
	signer    service.CookieSigner
	sessions  *middleware.AuthMiddleware
	secure    bool
	logger    *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC         usecase.AuthUsecase
	SessionUC      usecase.SessionUsecase
	OAuthService   service.OAuthService
	Signer         service.CookieSigner
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:    params.AuthUC,
		sessionUC: params.SessionUC,
		oauth:     params.OAuthService,
		signer:    params.Signer,
		sessions:  params.AuthMiddleware,
		secure:    params.Config.Session.Secure,
		logger:    params.Logger,
	}
}

// Register creates a local account and signs it in.
func (h *AuthHandler) Register(c echo.Context) error {
	var form credentialsForm
	if err := h.bindForm(c, &form); err != nil {
		return response.RedirectWithError(c, "/register", view.NoticeInvalidInput)
	}

	ctx := c.Request().Context()
	user, err := h.authUC.RegisterLocal(ctx, form.Username, form.Password)
	if err != nil {
		logger(ctx, h.logger).Info("Registration failed", slog.Any("error", err))

		return response.RedirectWithError(c, "/register", noticeFor(err, view.NoticeInvalidInput))
	}

	if err := h.login(c, user); err != nil {
		logger(ctx, h.logger).Error("Failed to start session after registration", slog.Any("error", err))

		return response.RedirectWithError(c, "/login", view.NoticeUnavailable)
	}

	return response.Redirect(c, "/secrets")
}

// Login verifies a username and password and signs the user in.
func (h *AuthHandler) Login(c echo.Context) error {
	var form credentialsForm
	if err := h.bindForm(c, &form); err != nil {
		return response.RedirectWithError(c, "/login", view.NoticeInvalidCredentials)
	}

	ctx := c.Request().Context()
	creds := entity.LocalCredentials{
		Username: form.Username,
		Password: form.Password,
	}
	user, err := h.authUC.Authenticate(ctx, creds)
	if err != nil {
		logger(ctx, h.logger).Info("Login failed",
			slog.String("strategy", string(creds.Name())),
			slog.String("code", domainerrors.CodeOf(err)),
			slog.Any("error", err),
		)

		return response.RedirectWithError(c, "/login", noticeFor(err, view.NoticeInvalidCredentials))
	}

	if err := h.login(c, user); err != nil {
		logger(ctx, h.logger).Error("Failed to start session", slog.Any("error", err))

		return response.RedirectWithError(c, "/login", view.NoticeUnavailable)
	}

	return response.Redirect(c, "/secrets")
}

// Logout destroys the session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.ClearSessionCookie(c)

	if err := h.sessionUC.Logout(c.Request().Context(), deliverycontext.GetSession(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Redirect(c, "/")
}

// GoogleLogin starts the authorization-code flow. The state travels both in
// the consent URL and in a signed, short-lived cookie.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	state, err := newState()
	if err != nil {
		return errors.Wrap(err, "generate oauth state")
	}

	sealed, err := h.signer.SignState(state, stateTTL)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     stateCookieName,
		Value:    sealed,
		Path:     stateCookiePath,
		MaxAge:   int(stateTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Redirect(c, h.oauth.AuthorizationURL(state))
}

// GoogleCallback completes the flow. Every failure lands on /login.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger(ctx, h.logger)

	expected := h.consumeState(c)

	if providerErr := c.QueryParam("error"); providerErr != "" {
		log.Info("Google sign-in was not granted", slog.String("error", providerErr))

		return response.RedirectWithError(c, "/login", view.NoticeGoogleFailed)
	}

	if err := checkState(expected, c.QueryParam("state")); err != nil {
		log.Warn("Google callback rejected", slog.Any("error", err))

		return response.RedirectWithError(c, "/login", view.NoticeGoogleFailed)
	}

	code := c.QueryParam("code")
	if code == "" {
		return response.RedirectWithError(c, "/login", view.NoticeGoogleFailed)
	}

	creds := entity.GoogleCredentials{Code: code}
	user, err := h.authUC.Authenticate(ctx, creds)
	if err != nil {
		log.Warn("Login failed",
			slog.String("strategy", string(creds.Name())),
			slog.String("code", domainerrors.CodeOf(err)),
			slog.Any("error", err),
		)

		return response.RedirectWithError(c, "/login", noticeFor(err, view.NoticeGoogleFailed))
	}

	if err := h.login(c, user); err != nil {
		log.Error("Failed to start session after Google sign-in", slog.Any("error", err))

		return response.RedirectWithError(c, "/login", view.NoticeUnavailable)
	}

	return response.Redirect(c, "/secrets")
}

// login rotates the session to the user and writes the new cookie.
func (h *AuthHandler) login(c echo.Context, user *entity.User) error {
	session, err := h.sessionUC.Login(c.Request().Context(), deliverycontext.GetSession(c), user)
	if err != nil {
		return err
	}

	deliverycontext.SetSession(c, session)
	deliverycontext.SetUser(c, user)

	return h.sessions.WriteSessionCookie(c, session)
}

func (h *AuthHandler) bindForm(c echo.Context, form *credentialsForm) error {
	if err := c.Bind(form); err != nil {
		return err
	}

	return c.Validate(form)
}

// consumeState reads and clears the state cookie, returning "" when it is
// absent or fails verification.
func (h *AuthHandler) consumeState(c echo.Context) string {
	cookie, err := c.Cookie(stateCookieName)

	c.SetCookie(&http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     stateCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	if err != nil {
		return ""
	}

	state, err := h.signer.VerifyState(cookie.Value)
	if err != nil {
		return ""
	}

	return state
}

// checkState compares the state echoed by Google with the one from the cookie.
func checkState(expected, got string) error {
	if expected == "" {
		return domainerrors.ErrOAuthStateMismatch.WrapMessage("state cookie missing or invalid")
	}
	if subtle.ConstantTimeCompare([]byte(expected), []byte(got)) != 1 {
		return domainerrors.ErrOAuthStateMismatch.WrapMessage("state parameter does not match")
	}

	return nil
}

func newState() (string, error) {
	buf := make([]byte, stateBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
