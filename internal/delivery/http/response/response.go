package response

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "INVALID_CREDENTIALS"
	Details string `json:"details,omitempty"` // Detailed error description
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// Redirect sends a 302 to path.
func Redirect(c echo.Context, path string) error {
	return c.Redirect(http.StatusFound, path)
}

// RedirectWithError sends a 302 to path carrying a notice code in the "error" query parameter.
func RedirectWithError(c echo.Context, path string, code string) error {
	return c.Redirect(http.StatusFound, path+"?"+url.Values{"error": {code}}.Encode())
}
