package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "secrets/internal/delivery/context"
	"secrets/internal/delivery/http/response"
	"secrets/internal/delivery/http/view"
	domainerrors "secrets/internal/domain/errors"
	"secrets/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// submitForm is the body of POST /submit. Length and blankness are checked by SecretUsecase.
type submitForm struct {
	Secret string `form:"secret"`
}

// SecretHandler holds dependencies for the secret pages.
type SecretHandler struct {
	secretUC  usecase.SecretUsecase
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// SecretHandlerParams holds dependencies for SecretHandler, injected by Fx.
type SecretHandlerParams struct {
	fx.In

	SecretUC  usecase.SecretUsecase
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// NewSecretHandler is the constructor for SecretHandler, injected by Fx.
func NewSecretHandler(params SecretHandlerParams) *SecretHandler {
	return &SecretHandler{
		secretUC:  params.SecretUC,
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// ListSecrets renders every submitted secret. A store failure still renders
// the page, with a notice and no list.
func (h *SecretHandler) ListSecrets(c echo.Context) error {
	ctx := c.Request().Context()

	secrets, err := h.secretUC.ListSecrets(ctx)
	if err != nil {
		logger(ctx, h.logger).Error("Failed to list secrets", slog.Any("error", err))

		return render(c, http.StatusServiceUnavailable, "secrets", view.PageData{
			Notice: view.NoticeText(view.NoticeUnavailable),
		})
	}

	return render(c, http.StatusOK, "secrets", view.PageData{Secrets: secrets})
}

// SubmitPage renders the form for signed-in users and sends everyone else to /login.
func (h *SecretHandler) SubmitPage(c echo.Context) error {
	if !h.sessionUC.IsAuthenticated(c.Request().Context(), deliverycontext.GetSession(c)) {
		return response.Redirect(c, "/login")
	}

	return render(c, http.StatusOK, "submit", view.PageData{})
}

// Submit stores the caller's secret.
func (h *SecretHandler) Submit(c echo.Context) error {
	var form submitForm
	if err := c.Bind(&form); err != nil {
		return response.RedirectWithError(c, "/submit", view.NoticeInvalidInput)
	}

	ctx := c.Request().Context()
	err := h.secretUC.SubmitSecret(ctx, deliverycontext.GetUser(c), form.Secret)
	switch {
	case err == nil:
		return response.Redirect(c, "/secrets")
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return response.Redirect(c, "/login")
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return response.RedirectWithError(c, "/submit", view.NoticeInvalidInput)
	case errors.Is(err, domainerrors.ErrStoreUnavailable):
		logger(ctx, h.logger).Error("Failed to save secret", slog.Any("error", err))

		return response.RedirectWithError(c, "/submit", view.NoticeUnavailable)
	default:
		return errors.WithStack(err)
	}
}
