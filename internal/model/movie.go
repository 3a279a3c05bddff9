package model

import "time"

// Movie represents an entry of the movie catalog.  Movies are created
// and maintained by admins.  The list of shows screening a movie is a
// projection over shows.movie_id and is never stored on the movie row
// itself, so it cannot drift out of sync when shows are added or
// deleted.
//
// Fields:
//  MovieID       - opaque UUID primary key.
//  MovieName     - display title.
//  Description   - synopsis text.
//  Genres        - comma separated genre list (e.g. "Drama,Crime").
//  ReleaseDate   - release date as "YYYY-MM-DD".
//  Runtime       - runtime in minutes.
//  Certification - rating certificate (e.g. "R", "PG-13").
//  Media         - poster/media reference (URL or path).
//  AdminEmail    - email of the admin who created the movie.
//  CreatedAt     - creation timestamp.
//  UpdatedAt     - last update timestamp.
type Movie struct {
	MovieID       string    `json:"movie_id"`      // movies.movie_id
	MovieName     string    `json:"movie_name"`    // movies.movie_name
	Description   string    `json:"description"`   // movies.description
	Genres        string    `json:"genres"`        // movies.genres
	ReleaseDate   string    `json:"release_date"`  // movies.release_date
	Runtime       uint32    `json:"runtime"`       // movies.runtime
	Certification string    `json:"certification"` // movies.certification
	Media         string    `json:"media"`         // movies.media
	AdminEmail    string    `json:"admin_email"`   // movies.admin_email
	CreatedAt     time.Time `json:"created_at"`    // movies.created_at
	UpdatedAt     time.Time `json:"updated_at"`    // movies.updated_at
}
