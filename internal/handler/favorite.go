package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"imovies/internal/repository"
)

// FavoriteHandler serves the user's favorite-movie list.  Adding is
// idempotent and removing a non-favorite succeeds, so clients can
// toggle freely without first reading the current state.
type FavoriteHandler struct {
	Favorites *repository.FavoriteRepo
	Movies    *repository.MovieRepo
}

func NewFavoriteHandler(favorites *repository.FavoriteRepo, movies *repository.MovieRepo) *FavoriteHandler {
	if favorites == nil || movies == nil {
		panic("nil repository passed to NewFavoriteHandler")
	}
	return &FavoriteHandler{Favorites: favorites, Movies: movies}
}

// AddFavorite handles POST /api/favorite/addfavorite/:movieId (user).
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	movieID := c.Param("movieId")
	if movieID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if _, err := h.Movies.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load movie failed"})
	}
	if err := h.Favorites.Add(ctx, movieID, authEmail(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add favorite failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"movie_id": movieID})
}

// RemoveFavorite handles DELETE /api/favorite/removefavorite/:movieId
// (user).  Removing a movie that is not a favorite is not an error.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	movieID := c.Param("movieId")
	if movieID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Favorites.Remove(ctx, movieID, authEmail(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "remove favorite failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// GetFavorites handles GET /api/favorite/getfavorites (user).  Returns
// the favorited movies, not just their IDs, so the client can render
// the list directly.
func (h *FavoriteHandler) GetFavorites(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	movies, err := h.Favorites.ListByUser(ctx, authEmail(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load favorites failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"movies": movies})
}
