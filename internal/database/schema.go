package database

import (
	"context"
	"database/sql"
)

// schema holds the CREATE TABLE statements for every collection of the
// application.  The unique key on tickets (show_id, category,
// seat_label) is what makes seat sales race-safe: the second booking of
// the same seat fails on insert.  Statements are idempotent so Migrate
// can run at every startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id CHAR(36) NOT NULL,
		username VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(100) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_admins_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id CHAR(36) NOT NULL,
		username VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(100) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS movies (
		movie_id CHAR(36) NOT NULL,
		movie_name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		genres VARCHAR(255) NOT NULL,
		release_date VARCHAR(10) NOT NULL,
		runtime INT UNSIGNED NOT NULL,
		certification VARCHAR(20) NOT NULL,
		media VARCHAR(1024) NOT NULL,
		admin_email VARCHAR(255) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (movie_id)
	)`,
	`CREATE TABLE IF NOT EXISTS theatres (
		theatre_id CHAR(36) NOT NULL,
		theatre_name VARCHAR(255) NOT NULL,
		location VARCHAR(255) NOT NULL,
		balcony_price INT UNSIGNED NOT NULL,
		middle_price INT UNSIGNED NOT NULL,
		lower_price INT UNSIGNED NOT NULL,
		balcony_rows INT UNSIGNED NOT NULL,
		balcony_cols INT UNSIGNED NOT NULL,
		middle_rows INT UNSIGNED NOT NULL,
		middle_cols INT UNSIGNED NOT NULL,
		lower_rows INT UNSIGNED NOT NULL,
		lower_cols INT UNSIGNED NOT NULL,
		admin_email VARCHAR(255) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (theatre_id),
		UNIQUE KEY uq_theatres_name (theatre_name)
	)`,
	`CREATE TABLE IF NOT EXISTS shows (
		show_id CHAR(36) NOT NULL,
		movie_id CHAR(36) NOT NULL,
		theatre_name VARCHAR(255) NOT NULL,
		show_date VARCHAR(10) NOT NULL,
		show_time VARCHAR(5) NOT NULL,
		admin_email VARCHAR(255) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (show_id),
		KEY idx_shows_movie (movie_id),
		KEY idx_shows_admin (admin_email)
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		booking_id CHAR(36) NOT NULL,
		user_email VARCHAR(255) NOT NULL,
		show_id CHAR(36) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (booking_id),
		KEY idx_bookings_user (user_email),
		KEY idx_bookings_show (show_id)
	)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		show_id CHAR(36) NOT NULL,
		category ENUM('balcony','middle','lower') NOT NULL,
		seat_label VARCHAR(10) NOT NULL,
		booking_id CHAR(36) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_tickets_seat (show_id, category, seat_label),
		KEY idx_tickets_booking (booking_id)
	)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		movie_id CHAR(36) NOT NULL,
		user_email VARCHAR(255) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_favorites_pair (movie_id, user_email)
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		review_id CHAR(36) NOT NULL,
		movie_id CHAR(36) NOT NULL,
		username VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		review TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (review_id),
		KEY idx_reviews_movie (movie_id),
		KEY idx_reviews_email (email)
	)`,
}

// Migrate creates all tables that do not exist yet.  It runs at server
// startup so a fresh database is usable immediately.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
