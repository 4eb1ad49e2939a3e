package handler

import (
	"net/http"

	"secrets/internal/delivery/http/view"

	"github.com/labstack/echo/v4"
)

// PageHandler renders the static pages.
type PageHandler struct{}

// NewPageHandler is the constructor for PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Home renders the landing page.
func (h *PageHandler) Home(c echo.Context) error {
	return render(c, http.StatusOK, "home", view.PageData{})
}

// LoginPage renders the login form.
func (h *PageHandler) LoginPage(c echo.Context) error {
	return render(c, http.StatusOK, "login", view.PageData{})
}

// RegisterPage renders the registration form.
func (h *PageHandler) RegisterPage(c echo.Context) error {
	return render(c, http.StatusOK, "register", view.PageData{})
}
