package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "secrets/internal/delivery/context"
	"secrets/internal/delivery/http/response"
	"secrets/internal/delivery/http/view"
	domainerrors "secrets/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Browsers get the error page, API clients get JSON. Neither sees internal details.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code, message := m.classify(err, c)

	if wantsJSON(c) || c.Echo().Renderer == nil {
		m.writeJSON(c, status, code, message)

		return
	}

	renderErr := c.Render(status, "error", view.PageData{
		Status:  status,
		Message: message,
		User:    deliverycontext.GetUser(c),
	})
	if renderErr != nil {
		m.logger.Error("Failed to render error page", slog.Any("error", renderErr))
		m.writeJSON(c, status, code, message)
	}
}

func (m *ErrorMiddleware) classify(err error, c echo.Context) (status int, code, message string) {
	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(err, c)
		}

		return appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message()
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			m.logUnhandled(err, c)
		}

		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && httpErr.Code < http.StatusInternalServerError {
			message = msg
		}

		return httpErr.Code, "HTTP_ERROR", message
	}

	// Default to internal error, log error and return generic error
	m.logUnhandled(err, c)

	return http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message()
}

func (m *ErrorMiddleware) logUnhandled(err error, c echo.Context) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.String("code", domainerrors.CodeOf(err)),
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

func (m *ErrorMiddleware) writeJSON(c echo.Context, status int, code, message string) {
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}

	if err := response.Error(c, status, code, message, ""); err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

func wantsJSON(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)

	return strings.Contains(accept, echo.MIMEApplicationJSON) && !strings.Contains(accept, echo.MIMETextHTML)
}
