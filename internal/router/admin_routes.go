package router

import (
	"github.com/labstack/echo/v4"

	"imovies/internal/handler"
	"imovies/internal/middleware"
	"imovies/internal/model"
)

// RegisterAdmin registers the catalog management endpoints.  Every
// route requires a valid token carrying the ADMIN role.  Ownership is
// enforced one level down in the repositories: an admin can only
// update or delete movies and shows they created.
func RegisterAdmin(e *echo.Echo, m *handler.MovieHandler, t *handler.TheatreHandler, s *handler.ShowHandler, jwtSecret string) {
	g := e.Group("/api")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin))

	// Movie catalog
	g.POST("/movies/addmovie", m.AddMovie)
	g.PUT("/movies/updatemovie/:movieId", m.UpdateMovie)
	g.DELETE("/movies/deletemovie/:movieId", m.DeleteMovie)

	// Theatres
	g.POST("/theatres/addtheatre", t.AddTheatre)

	// Shows.  Deleting a show cascades over its tickets and bookings,
	// which is why the route names both the movie and the show.
	g.POST("/shows/addshow", s.AddShow)
	g.GET("/shows/getadminshows", s.GetAdminShows)
	g.DELETE("/shows/deleteshow/:movieId/:showId", s.DeleteShow)
}
