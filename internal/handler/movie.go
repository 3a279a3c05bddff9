package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"imovies/internal/model"
	"imovies/internal/repository"
)

// MovieHandler serves the movie catalog: admin CRUD plus the public
// browse endpoints.  A movie's show list is never stored; it is always
// derived from the shows table at read time.
type MovieHandler struct {
	Movies *repository.MovieRepo
}

func NewMovieHandler(movies *repository.MovieRepo) *MovieHandler {
	if movies == nil {
		panic("nil repository passed to NewMovieHandler")
	}
	return &MovieHandler{Movies: movies}
}

type movieReq struct {
	MovieName     string `json:"movie_name"`
	Description   string `json:"description"`
	Genres        string `json:"genres"`
	ReleaseDate   string `json:"release_date"`
	Runtime       uint32 `json:"runtime"`
	Certification string `json:"certification"`
	Media         string `json:"media"`
}

func (r *movieReq) validate() string {
	r.MovieName = strings.TrimSpace(r.MovieName)
	switch {
	case r.MovieName == "":
		return "movie_name is required"
	case r.Description == "":
		return "description is required"
	case r.ReleaseDate == "":
		return "release_date is required"
	case r.Runtime == 0:
		return "runtime must be positive"
	}
	return ""
}

// AddMovie handles POST /api/movies/addmovie (admin).  Returns 201 with
// the created movie.
func (h *MovieHandler) AddMovie(c echo.Context) error {
	var req movieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	m := model.Movie{
		MovieName:     req.MovieName,
		Description:   req.Description,
		Genres:        req.Genres,
		ReleaseDate:   req.ReleaseDate,
		Runtime:       req.Runtime,
		Certification: req.Certification,
		Media:         req.Media,
		AdminEmail:    authEmail(c),
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Movies.Create(ctx, &m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create movie failed"})
	}
	return c.JSON(http.StatusCreated, m)
}

// UpdateMovie handles PUT /api/movies/updatemovie/:movieId (admin).
// Only the creating admin may update; others get 403.
func (h *MovieHandler) UpdateMovie(c echo.Context) error {
	movieID := c.Param("movieId")
	if movieID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	var req movieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	m := model.Movie{
		MovieID:       movieID,
		MovieName:     req.MovieName,
		Description:   req.Description,
		Genres:        req.Genres,
		ReleaseDate:   req.ReleaseDate,
		Runtime:       req.Runtime,
		Certification: req.Certification,
		Media:         req.Media,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	err := h.Movies.UpdateByIDAndAdmin(ctx, &m, authEmail(c))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMovieNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update movie failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"movie_id": movieID})
}

// DeleteMovie handles DELETE /api/movies/deletemovie/:movieId (admin).
// A movie that still has scheduled shows cannot be deleted; the shows
// must be removed first.  Deleting a movie also removes its favorites
// and reviews.
func (h *MovieHandler) DeleteMovie(c echo.Context) error {
	movieID := c.Param("movieId")
	if movieID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	err := h.Movies.DeleteByIDAndAdmin(ctx, movieID, authEmail(c))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMovieNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "movie still has scheduled shows"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete movie failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// GetAllMovies handles GET /api/movies/getallmovies (public).
func (h *MovieHandler) GetAllMovies(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	movies, err := h.Movies.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load movies failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"movies": movies})
}

// GetMovieByID handles GET /api/movies/getmoviebyid/:movieId (public).
// The response includes the IDs of the shows currently screening the
// movie, derived from the shows table.
func (h *MovieHandler) GetMovieByID(c echo.Context) error {
	movieID := c.Param("movieId")
	if movieID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	m, err := h.Movies.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load movie failed"})
	}
	showIDs, err := h.Movies.ShowIDs(ctx, movieID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load shows failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"movie": m,
		"shows": showIDs,
	})
}
