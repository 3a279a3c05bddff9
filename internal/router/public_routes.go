package router

import (
	"github.com/labstack/echo/v4"

	"imovies/internal/handler"
)

// RegisterPublic registers the unauthenticated browse endpoints:
// the movie catalog, theatres, schedules, seat maps and movie reviews.
// Guests use these to pick a movie and a show before signing in to
// book.  The extra middleware (typically the Redis response cache and
// the rate limiter) is applied to the whole group.
func RegisterPublic(e *echo.Echo, m *handler.MovieHandler, t *handler.TheatreHandler, s *handler.ShowHandler, r *handler.ReviewHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/api", mw...)

	g.GET("/movies/getallmovies", m.GetAllMovies)
	g.GET("/movies/getmoviebyid/:movieId", m.GetMovieByID)

	g.GET("/theatres/getalltheatres", t.GetAllTheatres)
	g.GET("/theatres/gettheatre/:theatreName", t.GetTheatreByName)

	g.GET("/shows/getshowsbymovie/:movieId", s.GetShowsByMovie)
	g.GET("/shows/getseatmap/:showId", s.GetSeatMap)

	g.GET("/review/getmoviereviews/:movieId", r.GetMovieReviews)
}
