// Package queue defines message payloads exchanged over the message broker.
package queue

import "imovies/internal/model"

// BookingCreatedEvent is published when a booking commits successfully.
// It carries enough context for downstream consumers to log or notify
// without querying the primary database.
type BookingCreatedEvent struct {
	BookingID   string              `json:"booking_id"`
	UserEmail   string              `json:"user_email"`
	ShowID      string              `json:"show_id"`
	MovieName   string              `json:"movie_name"`
	TheatreName string              `json:"theatre_name"`
	ShowDate    string              `json:"show_date"`
	ShowTime    string              `json:"show_time"`
	Seats       model.SeatSelection `json:"seats"`
	TotalAmount int                 `json:"total_amount"`
	CreatedAt   string              `json:"created_at"`
}
