package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"imovies/internal/model"
	"imovies/internal/queue"
	"imovies/internal/repository"
	queue_publisher "imovies/internal/service"
)

// BookingHandler implements ticket purchase and booking history.  The
// purchase path is the one place seat maps are mutated, so it runs as a
// single transaction: either every requested seat is sold to the user
// or none is.
type BookingHandler struct {
	Shows    *repository.ShowRepo
	Movies   *repository.MovieRepo
	Theatres *repository.TheatreRepo
	Tickets  *repository.TicketRepo
	Bookings *repository.BookingRepo

	// Publish sends the post-commit booking event.  Swappable for tests;
	// defaults to the RabbitMQ publisher.
	Publish func(ctx context.Context, ev queue.BookingCreatedEvent) error
}

func NewBookingHandler(shows *repository.ShowRepo, movies *repository.MovieRepo, theatres *repository.TheatreRepo, tickets *repository.TicketRepo, bookings *repository.BookingRepo) *BookingHandler {
	if shows == nil || movies == nil || theatres == nil || tickets == nil || bookings == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{
		Shows:    shows,
		Movies:   movies,
		Theatres: theatres,
		Tickets:  tickets,
		Bookings: bookings,
		Publish:  queue_publisher.PublishBookingCreated,
	}
}

type bookReq struct {
	Seats model.SeatSelection `json:"seats"`
}

// BookTicket handles POST /api/bookings/bookticket/:showId (user).
//
// Validation happens before any write: the show must exist (404), the
// selection must be non-empty with known categories (400) and every
// seat label must exist in the theatre's grid for its category (400).
// Inside the transaction the requested seats are checked against sold
// tickets; any overlap aborts with 409 listing the unavailable seats.
// The unique key on tickets backstops the pre-check, so of two
// concurrent bookings for the same seat exactly one commits and the
// other gets 409.
func (h *BookingHandler) BookTicket(c echo.Context) error {
	userEmail := authEmail(c)
	showID := c.Param("showId")
	if showID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
	}
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	sel, ok := model.NormalizeSelection(req.Seats)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seats must name at least one seat in known categories"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	show, err := h.Shows.GetByID(ctx, showID)
	if err != nil {
		if errors.Is(err, repository.ErrShowNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load show failed"})
	}
	theatre, err := h.Theatres.GetByName(ctx, show.TheatreName)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load theatre failed"})
	}
	if bad := model.InvalidSeats(theatre, sel); len(bad) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "seats do not exist in this theatre",
			"invalid": bad,
		})
	}
	movie, err := h.Movies.GetByID(ctx, show.MovieID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load movie failed"})
	}

	total := 0
	for _, cat := range model.Categories() {
		price, _ := theatre.Price(cat)
		total += int(price) * len(sel[cat])
	}

	tx, err := h.Shows.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	sold, err := h.Tickets.SoldSeatsTx(ctx, tx, showID, sel)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check seat availability"})
	}
	if len(sold) > 0 {
		return c.JSON(http.StatusConflict, echo.Map{
			"error":       "some seats are already booked",
			"unavailable": sold,
		})
	}

	booking := model.Booking{UserEmail: userEmail, ShowID: showID}
	if err := h.Bookings.CreateTx(ctx, tx, &booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}
	if err := h.Tickets.CreateBulkTx(ctx, tx, showID, booking.BookingID, sel); err != nil {
		if errors.Is(err, repository.ErrSeatConflict) {
			// Lost a race after the pre-check: another booking committed
			// one of these seats in between.
			return c.JSON(http.StatusConflict, echo.Map{"error": "some seats are already booked"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create tickets failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	// Best effort: the booking is committed, so a broker failure is only
	// logged by the publisher and never surfaced to the client.
	ev := queue.BookingCreatedEvent{
		BookingID:   booking.BookingID,
		UserEmail:   userEmail,
		ShowID:      showID,
		MovieName:   movie.MovieName,
		TheatreName: show.TheatreName,
		ShowDate:    show.ShowDate,
		ShowTime:    show.ShowTime,
		Seats:       sel,
		TotalAmount: total,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		_ = h.Publish(pubCtx, ev)
	}()

	return c.JSON(http.StatusCreated, echo.Map{
		"booking_id":   booking.BookingID,
		"show_id":      showID,
		"seats":        sel,
		"total_amount": total,
	})
}

// GetUserBookings handles GET /api/bookings/getuserbookings (user).
// Returns the user's bookings newest first with show, movie and seat
// details.
func (h *BookingHandler) GetUserBookings(c echo.Context) error {
	userEmail := authEmail(c)
	ctx, cancel := reqCtx(c)
	defer cancel()

	details, err := h.Bookings.ListByUser(ctx, userEmail)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load bookings failed"})
	}
	if len(details) > 0 {
		ids := make([]string, 0, len(details))
		for _, d := range details {
			ids = append(ids, d.BookingID)
		}
		seats, err := h.Tickets.SeatsByBookings(ctx, ids)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load seats failed"})
		}
		for i := range details {
			if s, ok := seats[details[i].BookingID]; ok {
				details[i].Seats = s
			}
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": details})
}
