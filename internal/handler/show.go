package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"imovies/internal/model"
	"imovies/internal/repository"
)

// ShowHandler serves show scheduling (admin) and the public seat-map
// and schedule lookups.
type ShowHandler struct {
	Shows    *repository.ShowRepo
	Movies   *repository.MovieRepo
	Theatres *repository.TheatreRepo
	Tickets  *repository.TicketRepo
}

func NewShowHandler(shows *repository.ShowRepo, movies *repository.MovieRepo, theatres *repository.TheatreRepo, tickets *repository.TicketRepo) *ShowHandler {
	if shows == nil || movies == nil || theatres == nil || tickets == nil {
		panic("nil repository passed to NewShowHandler")
	}
	return &ShowHandler{Shows: shows, Movies: movies, Theatres: theatres, Tickets: tickets}
}

type addShowReq struct {
	MovieID     string `json:"movie_id"`
	TheatreName string `json:"theatre_name"`
	ShowDate    string `json:"show_date"`
	ShowTime    string `json:"show_time"`
}

// AddShow handles POST /api/shows/addshow (admin).  Both the movie and
// the theatre must already exist; the show starts with an empty seat
// map.
func (h *ShowHandler) AddShow(c echo.Context) error {
	var req addShowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.MovieID == "" || req.TheatreName == "" || req.ShowDate == "" || req.ShowTime == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie_id/theatre_name/show_date/show_time required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if _, err := h.Movies.GetByID(ctx, req.MovieID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load movie failed"})
	}
	if _, err := h.Theatres.GetByName(ctx, req.TheatreName); err != nil {
		if errors.Is(err, repository.ErrTheatreNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "theatre not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load theatre failed"})
	}
	s := model.Show{
		MovieID:     req.MovieID,
		TheatreName: req.TheatreName,
		ShowDate:    req.ShowDate,
		ShowTime:    req.ShowTime,
		AdminEmail:  authEmail(c),
	}
	if err := h.Shows.Create(ctx, &s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create show failed"})
	}
	return c.JSON(http.StatusCreated, s)
}

// GetAdminShows handles GET /api/shows/getadminshows (admin).  Lists
// the calling admin's shows with movie names joined in, ordered by
// date then time.
func (h *ShowHandler) GetAdminShows(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	shows, err := h.Shows.ListByAdmin(ctx, authEmail(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load shows failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"shows": shows})
}

// DeleteShow handles DELETE /api/shows/deleteshow/:movieId/:showId
// (admin).  The show's tickets and bookings are removed in the same
// transaction; the movie's show list shrinks automatically because it
// is derived from shows.movie_id.
func (h *ShowHandler) DeleteShow(c echo.Context) error {
	movieID := c.Param("movieId")
	showID := c.Param("showId")
	if movieID == "" || showID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie or show id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	err := h.Shows.DeleteCascade(ctx, movieID, showID, authEmail(c))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrShowNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete show failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// GetShowsByMovie handles GET /api/shows/getshowsbymovie/:movieId.
// Returns the movie's schedule ordered chronologically.
func (h *ShowHandler) GetShowsByMovie(c echo.Context) error {
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
	shows, err := h.Shows.ListByMovie(ctx, movieID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load shows failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"shows": shows})
}

// GetSeatMap handles GET /api/shows/getseatmap/:showId.  Returns the
// show, its theatre (grids and prices for the seat picker) and the
// current per-category sold-seat map.
func (h *ShowHandler) GetSeatMap(c echo.Context) error {
	showID := c.Param("showId")
	if showID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	s, err := h.Shows.GetByID(ctx, showID)
	if err != nil {
		if errors.Is(err, repository.ErrShowNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load show failed"})
	}
	t, err := h.Theatres.GetByName(ctx, s.TheatreName)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load theatre failed"})
	}
	seatMap, err := h.Tickets.SeatMap(ctx, showID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load seat map failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"show":     s,
		"theatre":  t,
		"seat_map": seatMap,
	})
}
