package model

import "time"

// Favorite is a membership record marking a movie as a favorite of a
// user.  The (movie_id, user_email) pair is unique; adding an existing
// favorite is a no-op and removing a missing one succeeds silently.
type Favorite struct {
	ID        uint64    // favorites.id
	MovieID   string    // favorites.movie_id
	UserEmail string    // favorites.user_email
	CreatedAt time.Time // favorites.created_at
}
