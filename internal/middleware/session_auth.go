package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dcampos/red-social-backend/internal/session"
)

// contextUserKey is where the gate stores the session identity on the echo
// context.
const contextUserKey = "usuario"

// LoginRequiredMessage is the fixed body of every 401 from the gate.
const LoginRequiredMessage = "Debes iniciar sesion primero"

// SessionAuth verifies the session cookie against the store and attaches the
// authenticated identity to the request context. Requests without a live
// session are rejected with 401 before reaching the handler.
func SessionAuth(store session.Store, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return c.String(http.StatusUnauthorized, LoginRequiredMessage)
			}

			data, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				return c.String(http.StatusUnauthorized, LoginRequiredMessage)
			}

			c.Set(contextUserKey, data)
			return next(c)
		}
	}
}

// CurrentUser returns the identity the gate attached, or nil on unprotected
// routes.
func CurrentUser(c echo.Context) *session.Data {
	data, _ := c.Get(contextUserKey).(*session.Data)
	return data
}

// SetCurrentUser attaches an identity to the context directly; used by tests
// that exercise handlers without the gate.
func SetCurrentUser(c echo.Context, data *session.Data) {
	c.Set(contextUserKey, data)
}
