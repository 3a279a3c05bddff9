package model

import "time"

// Ticket is one sold seat of a show.  The tickets table doubles as the
// per-show seat map: a row present for (show, category, label) means
// the seat is sold, absence means it is free.  The unique key over
// those three columns makes a double sale a duplicate-key error, so a
// booking that loses a race fails instead of overselling the seat.
//
// Fields:
//  ID        - auto-increment primary key.
//  ShowID    - show the seat belongs to.
//  Category  - seating category (balcony, middle, lower).
//  SeatLabel - seat label inside the category (e.g. "B1").
//  BookingID - booking the seat was sold under.
//  CreatedAt - sale timestamp.
type Ticket struct {
	ID        uint64    // tickets.id
	ShowID    string    // tickets.show_id
	Category  string    // tickets.category
	SeatLabel string    // tickets.seat_label
	BookingID string    // tickets.booking_id
	CreatedAt time.Time // tickets.created_at
}
