package model

import "time"

// Account represents a credentialed identity as stored in either the
// `users` or the `admins` table.  Both tables share the same shape; the
// table an account lives in decides whether it authenticates as a
// regular user or as an administrator.  Only the bcrypt hash of the
// password is persisted.
//
// Fields:
//  ID           - opaque UUID primary key.
//  Username     - display name chosen at registration.
//  Email        - unique email address (stored lower-cased).
//  PasswordHash - bcrypt hash of the password.
//  CreatedAt    - timestamp of creation.
//  UpdatedAt    - timestamp of last update.
type Account struct {
	ID           string    // users.id / admins.id
	Username     string    // users.username / admins.username
	Email        string    // users.email / admins.email
	PasswordHash string    // users.password_hash / admins.password_hash
	CreatedAt    time.Time // users.created_at / admins.created_at
	UpdatedAt    time.Time // users.updated_at / admins.updated_at
}

// Roles carried in the JWT "role" claim.  Admins own movies, theatres
// and shows; users book tickets, keep favorites and write reviews.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)
