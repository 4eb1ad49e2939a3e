package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"secrets/config"
	deliverycontext "secrets/internal/delivery/context"
	"secrets/internal/delivery/http/middleware"
	"secrets/internal/delivery/http/router"
	"secrets/internal/delivery/http/router/handler"
	"secrets/internal/delivery/http/view"
	"secrets/internal/domain/entity"
	mockservice "secrets/internal/mocks/service"
	mockusecase "secrets/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testStack struct {
	echo      *echo.Echo
	sessionUC *mockusecase.MockSessionUsecase
	secretUC  *mockusecase.MockSecretUsecase
}

func newTestStack(t *testing.T) *testStack {
	cfg := &config.Config{
		Session: &config.SessionConfig{CookieName: "secrets_session"},
	}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	signer := mockservice.NewMockCookieSigner(t)
	authUC := mockusecase.NewMockAuthUsecase(t)
	sessionUC := mockusecase.NewMockSessionUsecase(t)
	secretUC := mockusecase.NewMockSecretUsecase(t)
	oauth := mockservice.NewMockOAuthService(t)

	authMiddleware := middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
		Signer: signer, SessionUC: sessionUC, Config: cfg, Logger: logger,
	})

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	e := newEcho(cfg, logger, renderer)
	router.NewRouter(router.RouterParams{
		PageHandler: handler.NewPageHandler(),
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			AuthUC: authUC, SessionUC: sessionUC, OAuthService: oauth, Signer: signer,
			AuthMiddleware: authMiddleware, Config: cfg, Logger: logger,
		}),
		SecretHandler: handler.NewSecretHandler(handler.SecretHandlerParams{
			SecretUC: secretUC, SessionUC: sessionUC, Logger: logger,
		}),
		AuthMiddleware: authMiddleware,
	}).RegisterRoutes(e)

	return &testStack{echo: e, sessionUC: sessionUC, secretUC: secretUC}
}

func (s *testStack) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	s := newTestStack(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_AnonymousSubmitRedirectsToLogin(t *testing.T) {
	s := newTestStack(t)
	s.sessionUC.EXPECT().IsAuthenticated(mock.Anything, (*entity.Session)(nil)).Return(false)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/submit", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestServer_PublicSecretsPage(t *testing.T) {
	s := newTestStack(t)
	s.secretUC.EXPECT().ListSecrets(mock.Anything).Return([]string{"cats are great"}, nil)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/secrets", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cats are great")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestServer_StaticAssets(t *testing.T) {
	s := newTestStack(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/static/styles.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".jumbotron")
}

func TestServer_UnknownRouteRendersErrorPage(t *testing.T) {
	s := newTestStack(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMETextHTML)
	rec := s.do(req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>404</h1>")
}
