package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"imovies/internal/utils"
)

// JWTAuth returns an Echo middleware that validates a Bearer access
// token and injects the token's subject (the account email) and role
// claims into the request context.  The provided secret must match the
// one used when issuing tokens.  This middleware wraps protected routes
// so that handlers can read the authenticated identity via
// c.Get("email") and c.Get("role").
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")
			email, role, err := utils.ParseAccessToken(secret, raw)
			if err != nil || email == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set("email", email)
			c.Set("role", role)
			return next(c)
		}
	}
}
