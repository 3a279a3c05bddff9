package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imovies/internal/model"
	"imovies/internal/queue"
	"imovies/internal/repository"
)

// bookingFixture wires a BookingHandler against a sqlmock database and
// records published events instead of talking to RabbitMQ.
type bookingFixture struct {
	h    *BookingHandler
	mock sqlmock.Sqlmock
	db   interface{ Close() error }

	mu     sync.Mutex
	events []queue.BookingCreatedEvent
	pubWG  sync.WaitGroup
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	f := &bookingFixture{mock: mock, db: db}
	f.h = NewBookingHandler(
		repository.NewShowRepo(db),
		repository.NewMovieRepo(db),
		repository.NewTheatreRepo(db),
		repository.NewTicketRepo(db),
		repository.NewBookingRepo(db),
	)
	f.h.Publish = func(_ context.Context, ev queue.BookingCreatedEvent) error {
		f.mu.Lock()
		f.events = append(f.events, ev)
		f.mu.Unlock()
		f.pubWG.Done()
		return nil
	}
	return f
}

func (f *bookingFixture) bookRequest(t *testing.T, showID, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/bookticket/"+showID, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/bookings/bookticket/:showId")
	c.SetParamNames("showId")
	c.SetParamValues(showID)
	c.Set("email", "user@imovies.local")
	c.Set("role", model.RoleUser)
	require.NoError(t, f.h.BookTicket(c))
	return rec
}

func (f *bookingFixture) expectShow() {
	now := time.Now()
	f.mock.ExpectQuery("FROM shows WHERE show_id").
		WithArgs("show-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"show_id", "movie_id", "theatre_name", "show_date", "show_time", "admin_email", "created_at", "updated_at",
		}).AddRow("show-1", "movie-1", "Grand Central", "2026-09-01", "18:00", "admin@imovies.local", now, now))
}

func (f *bookingFixture) expectTheatre() {
	now := time.Now()
	f.mock.ExpectQuery("FROM theatres WHERE theatre_name").
		WithArgs("Grand Central").
		WillReturnRows(sqlmock.NewRows([]string{
			"theatre_id", "theatre_name", "location",
			"balcony_price", "middle_price", "lower_price",
			"balcony_rows", "balcony_cols", "middle_rows", "middle_cols", "lower_rows", "lower_cols",
			"admin_email", "created_at", "updated_at",
		}).AddRow("th-1", "Grand Central", "12 Station Road",
			320, 250, 180,
			2, 10, 4, 12, 3, 12,
			"admin@imovies.local", now, now))
}

func (f *bookingFixture) expectMovie() {
	now := time.Now()
	f.mock.ExpectQuery("FROM movies WHERE movie_id").
		WithArgs("movie-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"movie_id", "movie_name", "description", "genres", "release_date",
			"runtime", "certification", "media", "admin_email", "created_at", "updated_at",
		}).AddRow("movie-1", "Orbital", "desc", "Sci-Fi", "2026-03-13",
			141, "PG-13", "https://img", "admin@imovies.local", now, now))
}

func TestBookTicketSuccess(t *testing.T) {
	f := newBookingFixture(t)
	f.expectShow()
	f.expectTheatre()
	f.expectMovie()
	f.mock.ExpectBegin()
	f.mock.ExpectQuery("SELECT category, seat_label FROM tickets WHERE show_id").
		WillReturnRows(sqlmock.NewRows([]string{"category", "seat_label"}))
	f.mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(1, 1))
	f.mock.ExpectExec("INSERT INTO tickets").
		WillReturnResult(sqlmock.NewResult(0, 3))
	f.mock.ExpectCommit()

	f.pubWG.Add(1)
	rec := f.bookRequest(t, "show-1", `{"seats":{"balcony":["B1","B2"],"middle":["M5"]}}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		BookingID   string              `json:"booking_id"`
		ShowID      string              `json:"show_id"`
		Seats       model.SeatSelection `json:"seats"`
		TotalAmount int                 `json:"total_amount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.BookingID)
	assert.Equal(t, "show-1", resp.ShowID)
	assert.Equal(t, 2*320+250, resp.TotalAmount)
	assert.Equal(t, []string{"B1", "B2"}, resp.Seats["balcony"])

	f.pubWG.Wait()
	require.Len(t, f.events, 1)
	assert.Equal(t, resp.BookingID, f.events[0].BookingID)
	assert.Equal(t, "Orbital", f.events[0].MovieName)
	assert.Equal(t, 2*320+250, f.events[0].TotalAmount)

	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestBookTicketSeatConflict(t *testing.T) {
	f := newBookingFixture(t)
	f.expectShow()
	f.expectTheatre()
	f.expectMovie()
	f.mock.ExpectBegin()
	f.mock.ExpectQuery("SELECT category, seat_label FROM tickets WHERE show_id").
		WillReturnRows(sqlmock.NewRows([]string{"category", "seat_label"}).
			AddRow("balcony", "B2"))
	f.mock.ExpectRollback()

	rec := f.bookRequest(t, "show-1", `{"seats":{"balcony":["B1","B2"]}}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	var resp struct {
		Error       string          `json:"error"`
		Unavailable []model.SeatRef `json:"unavailable"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []model.SeatRef{{Category: "balcony", SeatLabel: "B2"}}, resp.Unavailable)

	assert.Empty(t, f.events, "no event for a failed booking")
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestBookTicketRaceLostOnInsert(t *testing.T) {
	f := newBookingFixture(t)
	f.expectShow()
	f.expectTheatre()
	f.expectMovie()
	f.mock.ExpectBegin()
	f.mock.ExpectQuery("SELECT category, seat_label FROM tickets WHERE show_id").
		WillReturnRows(sqlmock.NewRows([]string{"category", "seat_label"}))
	f.mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(1, 1))
	f.mock.ExpectExec("INSERT INTO tickets").
		WillReturnError(errDuplicateTicket{})
	f.mock.ExpectRollback()

	rec := f.bookRequest(t, "show-1", `{"seats":{"balcony":["B1"]}}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Empty(t, f.events)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

type errDuplicateTicket struct{}

func (errDuplicateTicket) Error() string {
	return "Error 1062 (23000): Duplicate entry 'show-1-balcony-B1' for key 'uq_tickets_seat'"
}

func TestBookTicketUnknownShow(t *testing.T) {
	f := newBookingFixture(t)
	f.mock.ExpectQuery("FROM shows WHERE show_id").
		WithArgs("show-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"show_id", "movie_id", "theatre_name", "show_date", "show_time", "admin_email", "created_at", "updated_at",
		}))

	rec := f.bookRequest(t, "show-1", `{"seats":{"balcony":["B1"]}}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestBookTicketSeatOutsideGrid(t *testing.T) {
	f := newBookingFixture(t)
	f.expectShow()
	f.expectTheatre()

	// balcony is 2x10, so B21 does not exist
	rec := f.bookRequest(t, "show-1", `{"seats":{"balcony":["B21"]}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Invalid []model.SeatRef `json:"invalid"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []model.SeatRef{{Category: "balcony", SeatLabel: "B21"}}, resp.Invalid)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestBookTicketEmptySelection(t *testing.T) {
	f := newBookingFixture(t)

	rec := f.bookRequest(t, "show-1", `{"seats":{}}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.bookRequest(t, "show-1", `{"seats":{"vip":["V1"]}}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUserBookings(t *testing.T) {
	f := newBookingFixture(t)
	f.mock.ExpectQuery("FROM bookings b").
		WithArgs("user@imovies.local").
		WillReturnRows(sqlmock.NewRows([]string{
			"booking_id", "show_id", "movie_name", "theatre_name", "show_date", "show_time",
		}).AddRow("bk-1", "show-1", "Orbital", "Grand Central", "2026-09-01", "18:00"))
	f.mock.ExpectQuery("SELECT booking_id, category, seat_label FROM tickets").
		WithArgs("bk-1").
		WillReturnRows(sqlmock.NewRows([]string{"booking_id", "category", "seat_label"}).
			AddRow("bk-1", "balcony", "B1").
			AddRow("bk-1", "balcony", "B2"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/getuserbookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "user@imovies.local")
	c.Set("role", model.RoleUser)
	require.NoError(t, f.h.GetUserBookings(c))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Bookings []repository.BookingDetail `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, model.SeatSelection{"balcony": {"B1", "B2"}}, resp.Bookings[0].Seats)
	require.NoError(t, f.mock.ExpectationsWereMet())
}
