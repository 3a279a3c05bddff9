package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"imovies/internal/model"
)

// BookingRepo provides persistence for bookings.  A booking row only
// records who bought tickets for which show and when; the seats
// themselves live in the tickets table keyed by the booking ID, so a
// booking and its seats are written inside one transaction.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// CreateTx inserts a new booking within the scope of an existing
// transaction.  It assigns a generated UUID when the caller left
// BookingID empty.  The caller must commit or roll back the
// transaction.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	if b.BookingID == "" {
		b.BookingID = uuid.NewString()
	}
	const q = `INSERT INTO bookings (booking_id, user_email, show_id) VALUES (?, ?, ?)`
	_, err := tx.ExecContext(ctx, q, b.BookingID, b.UserEmail, b.ShowID)
	return err
}

// BookingDetail is a booking joined with its show and movie for user
// listings, including the seats bought per category.
type BookingDetail struct {
	BookingID   string              `json:"booking_id"`
	ShowID      string              `json:"show_id"`
	MovieName   string              `json:"movie_name"`
	TheatreName string              `json:"theatre_name"`
	ShowDate    string              `json:"show_date"`
	ShowTime    string              `json:"show_time"`
	Seats       model.SeatSelection `json:"seats"`
}

// ListByUser returns all bookings of a user, newest first, with show
// and movie details joined in.  Seats are populated by the caller via
// TicketRepo.SeatsByBookings; this keeps the query count flat.
func (r *BookingRepo) ListByUser(ctx context.Context, userEmail string) ([]BookingDetail, error) {
	const q = `SELECT b.booking_id, b.show_id, m.movie_name, s.theatre_name, s.show_date, s.show_time
	           FROM bookings b
	           JOIN shows s ON s.show_id = b.show_id
	           JOIN movies m ON m.movie_id = s.movie_id
	           WHERE b.user_email = ?
	           ORDER BY b.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]BookingDetail, 0)
	for rows.Next() {
		var d BookingDetail
		if err := rows.Scan(&d.BookingID, &d.ShowID, &d.MovieName, &d.TheatreName, &d.ShowDate, &d.ShowTime); err != nil {
			return nil, err
		}
		d.Seats = model.SeatSelection{}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}
