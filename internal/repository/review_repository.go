package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"imovies/internal/model"
)

// ReviewRepo provides append-only persistence for movie reviews.
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo returns a new ReviewRepo bound to the given database.
func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// Create appends a review.  A generated UUID is assigned when the
// caller left ReviewID empty.
func (r *ReviewRepo) Create(ctx context.Context, rev *model.Review) error {
	if rev.ReviewID == "" {
		rev.ReviewID = uuid.NewString()
	}
	const q = `INSERT INTO reviews (review_id, movie_id, username, email, review) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, rev.ReviewID, rev.MovieID, rev.Username, rev.Email, rev.Review)
	return err
}

func (r *ReviewRepo) list(ctx context.Context, q string, arg interface{}) ([]model.Review, error) {
	rows, err := r.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Review, 0)
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(&rev.ReviewID, &rev.MovieID, &rev.Username, &rev.Email, &rev.Review, &rev.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByMovie returns all reviews of a movie, newest first.
func (r *ReviewRepo) ListByMovie(ctx context.Context, movieID string) ([]model.Review, error) {
	const q = `SELECT review_id, movie_id, username, email, review, created_at
	           FROM reviews WHERE movie_id = ? ORDER BY created_at DESC`
	return r.list(ctx, q, movieID)
}

// ListByUser returns all reviews written by the given email, newest
// first.
func (r *ReviewRepo) ListByUser(ctx context.Context, email string) ([]model.Review, error) {
	const q = `SELECT review_id, movie_id, username, email, review, created_at
	           FROM reviews WHERE email = ? ORDER BY created_at DESC`
	return r.list(ctx, q, email)
}
