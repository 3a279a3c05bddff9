package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"imovies/internal/handler"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health
// check, used by load balancers and container probes.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the registration and login endpoints for both
// account kinds.  Users register and log in under /api/auth; admins
// under /api/auth/admin.  None of these routes require a token: a token
// is what they hand out.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/api/auth")
	g.POST("/register", a.RegisterUser)
	g.POST("/login", a.LoginUser)
	g.POST("/admin/register", a.RegisterAdmin)
	g.POST("/admin/login", a.LoginAdmin)
}
