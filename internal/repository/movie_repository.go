// Package repository contains data access logic for the movie catalog.
// A movie's show list is never stored on the movie row; it is derived
// from shows.movie_id on read so it always matches the shows that
// actually reference the movie.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"imovies/internal/model"
)

// MovieRepo manages persistence for movies.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the given DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

const movieColumns = `movie_id, movie_name, description, genres, release_date, runtime, certification, media, admin_email, created_at, updated_at`

func scanMovie(row interface{ Scan(...any) error }, m *model.Movie) error {
	return row.Scan(&m.MovieID, &m.MovieName, &m.Description, &m.Genres, &m.ReleaseDate,
		&m.Runtime, &m.Certification, &m.Media, &m.AdminEmail, &m.CreatedAt, &m.UpdatedAt)
}

// Create inserts a new movie and assigns its generated UUID back to the
// struct when the caller left MovieID empty.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	if m.MovieID == "" {
		m.MovieID = uuid.NewString()
	}
	const q = `INSERT INTO movies (movie_id, movie_name, description, genres, release_date, runtime, certification, media, admin_email)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		m.MovieID, m.MovieName, m.Description, m.Genres, m.ReleaseDate,
		m.Runtime, m.Certification, m.Media, m.AdminEmail)
	return err
}

// GetByID retrieves a movie by its ID.  It returns ErrMovieNotFound if
// there is no matching row.
func (r *MovieRepo) GetByID(ctx context.Context, id string) (*model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE movie_id = ?`
	var m model.Movie
	if err := scanMovie(r.db.QueryRowContext(ctx, q, id), &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// ListAll returns the whole catalog ordered by name.  When the catalog
// is empty it returns an empty slice and nil error.
func (r *MovieRepo) ListAll(ctx context.Context) ([]model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies ORDER BY movie_name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Movie, 0)
	for rows.Next() {
		var m model.Movie
		if err := scanMovie(rows, &m); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ShowIDs returns the IDs of all shows screening the movie, ordered
// chronologically.  This is the movie's show list.
func (r *MovieRepo) ShowIDs(ctx context.Context, movieID string) ([]string, error) {
	const q = `SELECT show_id FROM shows WHERE movie_id = ? ORDER BY show_date, show_time`
	rows, err := r.db.QueryContext(ctx, q, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// UpdateByIDAndAdmin updates a movie's attributes when it was created by
// the given admin.  It returns ErrMovieNotFound when the movie does not
// exist and ErrForbidden when it belongs to another admin.
func (r *MovieRepo) UpdateByIDAndAdmin(ctx context.Context, m *model.Movie, adminEmail string) error {
	var owner string
	err := r.db.QueryRowContext(ctx, `SELECT admin_email FROM movies WHERE movie_id = ?`, m.MovieID).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMovieNotFound
		}
		return err
	}
	if owner != adminEmail {
		return ErrForbidden
	}
	const q = `UPDATE movies
	           SET movie_name = ?, description = ?, genres = ?, release_date = ?, runtime = ?, certification = ?, media = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE movie_id = ?`
	_, err = r.db.ExecContext(ctx, q,
		m.MovieName, m.Description, m.Genres, m.ReleaseDate, m.Runtime, m.Certification, m.Media, m.MovieID)
	return err
}

// DeleteByIDAndAdmin removes a movie provided it was created by the
// given admin and no shows reference it.  ErrConflict is returned while
// dependent shows exist; callers must delete those first so that their
// tickets and bookings are cleaned up through the show cascade.
func (r *MovieRepo) DeleteByIDAndAdmin(ctx context.Context, movieID, adminEmail string) error {
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
	var owner string
	err = tx.QueryRowContext(ctx, `SELECT admin_email FROM movies WHERE movie_id = ?`, movieID).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrMovieNotFound
		}
		return err
	}
	if owner != adminEmail {
		err = ErrForbidden
		return err
	}
	var showCount int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE movie_id = ?`, movieID).Scan(&showCount); err != nil {
		return err
	}
	if showCount > 0 {
		err = ErrConflict
		return err
	}
	// Favorites and reviews of the movie go with it.
	if _, err = tx.ExecContext(ctx, `DELETE FROM favorites WHERE movie_id = ?`, movieID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM reviews WHERE movie_id = ?`, movieID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM movies WHERE movie_id = ?`, movieID); err != nil {
		return err
	}
	return nil
}
