// Package handler contains the HTTP endpoint implementations.  Each
// handler struct bundles the repositories it needs; routing and
// middleware wiring live in the router package.
package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// dbTimeout bounds the duration of database calls made from handlers.
const dbTimeout = 5 * time.Second

// authEmail returns the authenticated account's email as injected by
// the JWT middleware, or "" when the request is unauthenticated.
func authEmail(c echo.Context) string {
	email, _ := c.Get("email").(string)
	return email
}

// reqCtx derives a bounded context from the request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}
