// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "secrets/internal/delivery/context"
	"secrets/internal/delivery/http/view"
	domainerrors "secrets/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// render draws a page for the current principal, with the notice named by the
// "error" query parameter.
func render(c echo.Context, status int, name string, data view.PageData) error {
	data.User = deliverycontext.GetUser(c)
	if data.Notice == "" {
		data.Notice = view.NoticeText(c.QueryParam("error"))
	}

	return errors.WithStack(c.Render(status, name, data))
}

// noticeFor maps a failure to the notice code shown after the redirect.
func noticeFor(err error, fallback string) string {
	switch {
	case errors.Is(err, domainerrors.ErrDuplicateUsername):
		return view.NoticeUsernameTaken
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return view.NoticeInvalidCredentials
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return view.NoticeInvalidInput
	case errors.Is(err, domainerrors.ErrStoreUnavailable):
		return view.NoticeUnavailable
	default:
		return fallback
	}
}

func logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
