package context

import (
	"secrets/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeySession is the key for the restored session in echo.Context.
	KeySession ContextKey = "session"

	// KeyUser is the key for the authenticated principal in echo.Context.
	KeyUser ContextKey = "user"
)

// SetSession stores the restored session in echo.Context.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
}

// GetSession returns the restored session, or nil for anonymous requests.
func GetSession(c echo.Context) *entity.Session {
	if session, ok := c.Get(string(KeySession)).(*entity.Session); ok {
		return session
	}

	return nil
}

// SetUser stores the authenticated principal in echo.Context.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
}

// GetUser returns the authenticated principal, or nil for anonymous requests.
func GetUser(c echo.Context) *entity.User {
	if user, ok := c.Get(string(KeyUser)).(*entity.User); ok {
		return user
	}

	return nil
}
