package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"secrets/config"
	"secrets/internal/delivery/http/middleware"
	"secrets/internal/delivery/http/validator"
	"secrets/internal/delivery/http/view"
	mockservice "secrets/internal/mocks/service"
	mockusecase "secrets/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testCookieName = "secrets_session"

type testDeps struct {
	authUC    *mockusecase.MockAuthUsecase
	sessionUC *mockusecase.MockSessionUsecase
	secretUC  *mockusecase.MockSecretUsecase
	oauth     *mockservice.MockOAuthService
	signer    *mockservice.MockCookieSigner
	cfg       *config.Config
	logger    *slog.Logger
}

func newTestDeps(t *testing.T) *testDeps {
	return &testDeps{
		authUC:    mockusecase.NewMockAuthUsecase(t),
		sessionUC: mockusecase.NewMockSessionUsecase(t),
		secretUC:  mockusecase.NewMockSecretUsecase(t),
		oauth:     mockservice.NewMockOAuthService(t),
		signer:    mockservice.NewMockCookieSigner(t),
		cfg:       &config.Config{Session: &config.SessionConfig{CookieName: testCookieName}},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (d *testDeps) authMiddleware() *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
		Signer:    d.signer,
		SessionUC: d.sessionUC,
		Config:    d.cfg,
		Logger:    d.logger,
	})
}

func (d *testDeps) authHandler() *AuthHandler {
	return NewAuthHandler(AuthHandlerParams{
		AuthUC:         d.authUC,
		SessionUC:      d.sessionUC,
		OAuthService:   d.oauth,
		Signer:         d.signer,
		AuthMiddleware: d.authMiddleware(),
		Config:         d.cfg,
		Logger:         d.logger,
	})
}

func (d *testDeps) secretHandler() *SecretHandler {
	return NewSecretHandler(SecretHandlerParams{
		SecretUC:  d.secretUC,
		SessionUC: d.sessionUC,
		Logger:    d.logger,
	})
}

func newTestEcho(t *testing.T) *echo.Echo {
	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	e.Validator = validator.New()

	return e
}

func newFormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return req
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}
