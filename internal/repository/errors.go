// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios and map
// them onto HTTP status codes: not-found errors become 404, ErrForbidden
// becomes 403 and ErrSeatConflict / ErrConflict become 409.
package repository

import (
	"errors"
	"strings"
)

// ErrForbidden is returned when the caller attempts an operation on a
// resource owned by a different admin.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a delete or update cannot proceed because
// of dependent records, such as deleting a movie that still has shows.
var ErrConflict = errors.New("conflict")

// ErrSeatConflict is returned when a booking requests a seat that is
// already sold for the target show.  The booking transaction rolls back
// as a whole; no subset of the requested seats is ever sold.
var ErrSeatConflict = errors.New("seat already sold")

// ErrEmailExists is returned when registration hits the unique email
// constraint of the users or admins table.
var ErrEmailExists = errors.New("email already exists")

// Not-found sentinels, one per entity looked up by ID or name.
var (
	ErrMovieNotFound   = errors.New("movie not found")
	ErrTheatreNotFound = errors.New("theatre not found")
	ErrShowNotFound    = errors.New("show not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrAccountNotFound = errors.New("account not found")
)

// isDuplicateKey reports whether the error is a MySQL duplicate-entry
// violation (error 1062).
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
