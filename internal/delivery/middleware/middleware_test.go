package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"secrets/config"
	deliverycontext "secrets/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	logger, _ := newBufferedLogger()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var ctxID string
	handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, ctxID)
	assert.Equal(t, ctxID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	logger, _ := newBufferedLogger()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		assert.Equal(t, "client-id", deliverycontext.GetRequestID(c))

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		status  int
		wantLog bool
	}{
		{name: "quiet on success", debug: false, status: http.StatusOK, wantLog: false},
		{name: "debug logs success", debug: true, status: http.StatusOK, wantLog: true},
		{name: "server errors always logged", debug: false, status: http.StatusServiceUnavailable, wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferedLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/secrets", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.status, rec.Code)
			if tt.wantLog {
				assert.Contains(t, buf.String(), `"uri":"/secrets"`)
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestLoggerMiddleware_HandsErrorsToErrorHandler(t *testing.T) {
	logger, buf := newBufferedLogger()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewLoggerMiddleware(logger, &config.Config{}).Handle(func(echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "HTTP Request")
}
