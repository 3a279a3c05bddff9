package model

import "time"

// Show represents a scheduled screening of a movie in a theatre.  A
// show is created by an admin with an empty seat map; afterwards the
// seat map is mutated exclusively by booking operations (rows appearing
// in the tickets table) until the show is deleted.
//
// Fields:
//  ShowID      - opaque UUID primary key.
//  MovieID     - movie being screened.
//  TheatreName - name of the hosting theatre.
//  ShowDate    - screening date as "YYYY-MM-DD".
//  ShowTime    - screening time as "HH:MM".
//  AdminEmail  - email of the admin who scheduled the show.
//  CreatedAt   - creation timestamp.
//  UpdatedAt   - last update timestamp.
type Show struct {
	ShowID      string    `json:"show_id"`      // shows.show_id
	MovieID     string    `json:"movie_id"`     // shows.movie_id
	TheatreName string    `json:"theatre_name"` // shows.theatre_name
	ShowDate    string    `json:"show_date"`    // shows.show_date
	ShowTime    string    `json:"show_time"`    // shows.show_time
	AdminEmail  string    `json:"admin_email"`  // shows.admin_email
	CreatedAt   time.Time `json:"created_at"`   // shows.created_at
	UpdatedAt   time.Time `json:"updated_at"`   // shows.updated_at
}
