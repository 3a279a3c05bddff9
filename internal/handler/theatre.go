package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"imovies/internal/model"
	"imovies/internal/repository"
)

// TheatreHandler serves theatre management (admin) and browsing.
type TheatreHandler struct {
	Theatres *repository.TheatreRepo
}

func NewTheatreHandler(theatres *repository.TheatreRepo) *TheatreHandler {
	if theatres == nil {
		panic("nil repository passed to NewTheatreHandler")
	}
	return &TheatreHandler{Theatres: theatres}
}

type theatreReq struct {
	TheatreName  string         `json:"theatre_name"`
	Location     string         `json:"location"`
	BalconyPrice uint32         `json:"balcony_price"`
	MiddlePrice  uint32         `json:"middle_price"`
	LowerPrice   uint32         `json:"lower_price"`
	Balcony      model.SeatGrid `json:"balcony"`
	Middle       model.SeatGrid `json:"middle"`
	Lower        model.SeatGrid `json:"lower"`
}

// AddTheatre handles POST /api/theatres/addtheatre (admin).  Theatre
// names are globally unique; a duplicate name yields 409.  Every
// category needs a non-empty grid because seat labels are validated
// against it at booking time.
func (h *TheatreHandler) AddTheatre(c echo.Context) error {
	var req theatreReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.TheatreName = strings.TrimSpace(req.TheatreName)
	if req.TheatreName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "theatre_name is required"})
	}
	for _, g := range []model.SeatGrid{req.Balcony, req.Middle, req.Lower} {
		if g.Rows == 0 || g.Cols == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "every category needs rows and columns"})
		}
	}
	t := model.Theatre{
		TheatreName:  req.TheatreName,
		Location:     req.Location,
		BalconyPrice: req.BalconyPrice,
		MiddlePrice:  req.MiddlePrice,
		LowerPrice:   req.LowerPrice,
		Balcony:      req.Balcony,
		Middle:       req.Middle,
		Lower:        req.Lower,
		AdminEmail:   authEmail(c),
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Theatres.Create(ctx, &t); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "theatre name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create theatre failed"})
	}
	return c.JSON(http.StatusCreated, t)
}

// GetAllTheatres handles GET /api/theatres/getalltheatres.
func (h *TheatreHandler) GetAllTheatres(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	theatres, err := h.Theatres.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load theatres failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"theatres": theatres})
}

// GetTheatreByName handles GET /api/theatres/gettheatre/:theatreName.
// Clients use the returned grids and prices to render the seat picker.
func (h *TheatreHandler) GetTheatreByName(c echo.Context) error {
	name := c.Param("theatreName")
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid theatre name"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.Theatres.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrTheatreNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "theatre not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load theatre failed"})
	}
	return c.JSON(http.StatusOK, t)
}
