package model

import "time"

// Booking records a user's ticket purchase for a show.  It is created
// once at purchase time and is otherwise immutable.  The seats bought
// under a booking are the ticket rows carrying its booking_id, so the
// set of sold seats of a show is always exactly the union of its
// bookings' seats.
//
// Fields:
//  BookingID - opaque UUID primary key.
//  UserEmail - email of the purchasing user.
//  ShowID    - show the tickets belong to.
//  CreatedAt - purchase timestamp.
type Booking struct {
	BookingID string    `json:"booking_id"` // bookings.booking_id
	UserEmail string    `json:"user_email"` // bookings.user_email
	ShowID    string    `json:"show_id"`    // bookings.show_id
	CreatedAt time.Time `json:"created_at"` // bookings.created_at
}
