// Package repository contains data access logic for Show domain
// operations.  A Show represents a scheduled screening of a movie in a
// theatre.  Shows are created with an empty seat map (no ticket rows)
// and deleted with a full cascade over their tickets and bookings.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"imovies/internal/model"
)

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories, such as the booking
// transaction that touches bookings and tickets together.
func (r *ShowRepo) DB() *sql.DB {
	return r.db
}

// Create inserts a new show.  The seat map starts empty: no ticket rows
// exist until the first booking.  A generated UUID is assigned when the
// caller left ShowID empty.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	if s.ShowID == "" {
		s.ShowID = uuid.NewString()
	}
	const q = `INSERT INTO shows (show_id, movie_id, theatre_name, show_date, show_time, admin_email)
	           VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		s.ShowID, s.MovieID, s.TheatreName, s.ShowDate, s.ShowTime, s.AdminEmail)
	return err
}

// GetByID retrieves a show by its ID.  It returns ErrShowNotFound if
// there is no matching row.
func (r *ShowRepo) GetByID(ctx context.Context, id string) (*model.Show, error) {
	const q = `SELECT show_id, movie_id, theatre_name, show_date, show_time, admin_email, created_at, updated_at
	           FROM shows WHERE show_id = ?`
	var s model.Show
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&s.ShowID, &s.MovieID, &s.TheatreName, &s.ShowDate, &s.ShowTime, &s.AdminEmail, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &s, nil
}

// AdminShow is a show row denormalized with its movie name for the
// admin dashboard listing.
type AdminShow struct {
	ShowID      string `json:"show_id"`
	MovieID     string `json:"movie_id"`
	MovieName   string `json:"movie_name"`
	TheatreName string `json:"theatre_name"`
	ShowDate    string `json:"show_date"`
	ShowTime    string `json:"show_time"`
}

// ListByAdmin returns all shows created by the given admin with the
// movie name joined in, ordered chronologically (date then time
// ascending).  When no shows exist it returns an empty slice.
func (r *ShowRepo) ListByAdmin(ctx context.Context, adminEmail string) ([]AdminShow, error) {
	const q = `SELECT s.show_id, s.movie_id, m.movie_name, s.theatre_name, s.show_date, s.show_time
	           FROM shows s
	           JOIN movies m ON m.movie_id = s.movie_id
	           WHERE s.admin_email = ?
	           ORDER BY s.show_date ASC, s.show_time ASC`
	rows, err := r.db.QueryContext(ctx, q, adminEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]AdminShow, 0)
	for rows.Next() {
		var s AdminShow
		if err := rows.Scan(&s.ShowID, &s.MovieID, &s.MovieName, &s.TheatreName, &s.ShowDate, &s.ShowTime); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByMovie returns all shows screening the given movie ordered
// chronologically.  It is used by the public browse endpoints.
func (r *ShowRepo) ListByMovie(ctx context.Context, movieID string) ([]model.Show, error) {
	const q = `SELECT show_id, movie_id, theatre_name, show_date, show_time, admin_email, created_at, updated_at
	           FROM shows
	           WHERE movie_id = ?
	           ORDER BY show_date ASC, show_time ASC`
	rows, err := r.db.QueryContext(ctx, q, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Show, 0)
	for rows.Next() {
		var s model.Show
		if err := rows.Scan(&s.ShowID, &s.MovieID, &s.TheatreName, &s.ShowDate, &s.ShowTime, &s.AdminEmail, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteCascade removes a show and all of its dependent records
// (tickets first, then bookings, then the show) within one transaction
// so no partial cleanup can occur.  The movie's show list needs no
// fixup because it is derived from shows.movie_id.
//
// ErrShowNotFound is returned when the show does not exist or does not
// belong to the given movie; ErrForbidden when it was created by a
// different admin.
func (r *ShowRepo) DeleteCascade(ctx context.Context, movieID, showID, adminEmail string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	var dbMovieID, dbAdmin string
	err = tx.QueryRowContext(ctx,
		`SELECT movie_id, admin_email FROM shows WHERE show_id = ?`, showID,
	).Scan(&dbMovieID, &dbAdmin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrShowNotFound
		}
		return err
	}
	if dbMovieID != movieID {
		err = ErrShowNotFound
		return err
	}
	if dbAdmin != adminEmail {
		err = ErrForbidden
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM tickets WHERE show_id = ?`, showID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM bookings WHERE show_id = ?`, showID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE show_id = ?`, showID); err != nil {
		return err
	}
	return nil
}
