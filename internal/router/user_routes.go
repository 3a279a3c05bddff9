package router

import (
	"github.com/labstack/echo/v4"

	"imovies/internal/handler"
	"imovies/internal/middleware"
	"imovies/internal/model"
)

// RegisterUser registers the endpoints available to authenticated
// users: booking tickets, booking history, favorites and writing
// reviews.  Every route requires a token carrying the USER role.
func RegisterUser(e *echo.Echo, b *handler.BookingHandler, f *handler.FavoriteHandler, r *handler.ReviewHandler, jwtSecret string) {
	g := e.Group("/api")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleUser))

	// Bookings
	g.POST("/bookings/bookticket/:showId", b.BookTicket)
	g.GET("/bookings/getuserbookings", b.GetUserBookings)

	// Favorites
	g.POST("/favorite/addfavorite/:movieId", f.AddFavorite)
	g.DELETE("/favorite/removefavorite/:movieId", f.RemoveFavorite)
	g.GET("/favorite/getfavorites", f.GetFavorites)

	// Reviews
	g.POST("/review/addreview/:movieId", r.AddReview)
	g.GET("/review/getuserreviews", r.GetUserReviews)
}
