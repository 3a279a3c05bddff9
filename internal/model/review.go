package model

import "time"

// Review is an append-only free-text review of a movie.  Reviews carry
// the author's username and email; there is no edit or delete.
type Review struct {
	ReviewID  string    `json:"review_id"`  // reviews.review_id
	MovieID   string    `json:"movie_id"`   // reviews.movie_id
	Username  string    `json:"username"`   // reviews.username
	Email     string    `json:"email"`      // reviews.email
	Review    string    `json:"review"`     // reviews.review
	CreatedAt time.Time `json:"created_at"` // reviews.created_at
}
