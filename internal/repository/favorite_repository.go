package repository

import (
	"context"
	"database/sql"

	"imovies/internal/model"
)

// FavoriteRepo provides membership-style persistence for favorites.
// Both Add and Remove are idempotent: the UI toggles favorites freely
// and must never see a duplicate or a not-found error from a repeat
// click.
type FavoriteRepo struct {
	db *sql.DB
}

// NewFavoriteRepo returns a new FavoriteRepo bound to the given database.
func NewFavoriteRepo(db *sql.DB) *FavoriteRepo { return &FavoriteRepo{db: db} }

// Add marks a movie as a favorite of the user.  Adding an existing
// favorite is a no-op thanks to the unique (movie_id, user_email) key.
func (r *FavoriteRepo) Add(ctx context.Context, movieID, userEmail string) error {
	const q = `INSERT INTO favorites (movie_id, user_email) VALUES (?, ?)
	           ON DUPLICATE KEY UPDATE movie_id = movie_id`
	_, err := r.db.ExecContext(ctx, q, movieID, userEmail)
	return err
}

// Remove deletes the favorite.  Removing a favorite that does not exist
// succeeds silently.
func (r *FavoriteRepo) Remove(ctx context.Context, movieID, userEmail string) error {
	const q = `DELETE FROM favorites WHERE movie_id = ? AND user_email = ?`
	_, err := r.db.ExecContext(ctx, q, movieID, userEmail)
	return err
}

// ListByUser returns the movies the user marked as favorites, newest
// favorite first.
func (r *FavoriteRepo) ListByUser(ctx context.Context, userEmail string) ([]model.Movie, error) {
	const q = `SELECT m.movie_id, m.movie_name, m.description, m.genres, m.release_date, m.runtime, m.certification, m.media, m.admin_email, m.created_at, m.updated_at
	           FROM favorites f
	           JOIN movies m ON m.movie_id = f.movie_id
	           WHERE f.user_email = ?
	           ORDER BY f.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userEmail)
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
