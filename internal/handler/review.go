package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"imovies/internal/model"
	"imovies/internal/repository"
)

// ReviewHandler serves movie reviews.  Reviews are append-only: they
// can be written and listed but never edited or deleted.
type ReviewHandler struct {
	Reviews *repository.ReviewRepo
	Movies  *repository.MovieRepo
	Users   *repository.AccountRepo
}

func NewReviewHandler(reviews *repository.ReviewRepo, movies *repository.MovieRepo, users *repository.AccountRepo) *ReviewHandler {
	if reviews == nil || movies == nil || users == nil {
		panic("nil repository passed to NewReviewHandler")
	}
	return &ReviewHandler{Reviews: reviews, Movies: movies, Users: users}
}

type addReviewReq struct {
	Review string `json:"review"`
}

// AddReview handles POST /api/review/addreview/:movieId (user).  The
// author's username is looked up from the account so it cannot be
// spoofed in the request body.
func (h *ReviewHandler) AddReview(c echo.Context) error {
	movieID := c.Param("movieId")
	if movieID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	var req addReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Review = strings.TrimSpace(req.Review)
	if req.Review == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "review text is required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if _, err := h.Movies.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load movie failed"})
	}
	email := authEmail(c)
	acc, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load account failed"})
	}
	rev := model.Review{
		MovieID:  movieID,
		Username: acc.Username,
		Email:    email,
		Review:   req.Review,
	}
	if err := h.Reviews.Create(ctx, &rev); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create review failed"})
	}
	return c.JSON(http.StatusCreated, rev)
}

// GetMovieReviews handles GET /api/review/getmoviereviews/:movieId
// (public).  Newest first.
func (h *ReviewHandler) GetMovieReviews(c echo.Context) error {
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
	reviews, err := h.Reviews.ListByMovie(ctx, movieID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load reviews failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reviews": reviews})
}

// GetUserReviews handles GET /api/review/getuserreviews (user).
// Newest first.
func (h *ReviewHandler) GetUserReviews(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	reviews, err := h.Reviews.ListByUser(ctx, authEmail(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load reviews failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reviews": reviews})
}
