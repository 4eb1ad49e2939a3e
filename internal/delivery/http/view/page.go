package view

import "secrets/internal/domain/entity"

// Notice codes carried in the "error" query parameter of a redirect.
const (
	NoticeInvalidCredentials = "invalid_credentials"
	NoticeUsernameTaken      = "username_taken"
	NoticeInvalidInput       = "invalid_input"
	NoticeGoogleFailed       = "google_failed"
	NoticeUnavailable        = "unavailable"
)

var notices = map[string]string{
	NoticeInvalidCredentials: "Incorrect username or password.",
	NoticeUsernameTaken:      "That username is already registered.",
	NoticeInvalidInput:       "Please check your input and try again.",
	NoticeGoogleFailed:       "Signing in with Google failed. Please try again.",
	NoticeUnavailable:        "The service is temporarily unavailable. Please try again later.",
}

// NoticeText maps a notice code to its fixed message. Unknown codes get a
// generic message so the query string is never echoed into the page.
func NoticeText(code string) string {
	if code == "" {
		return ""
	}
	if text, ok := notices[code]; ok {
		return text
	}

	return "Something went wrong, please try again."
}

// PageData is the view model shared by every page.
type PageData struct {
	User    *entity.User
	Notice  string
	Secrets []string

	// Set on the error page only.
	Status  int
	Message string
}
