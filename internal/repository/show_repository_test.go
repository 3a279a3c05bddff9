package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCascadeRemovesTicketsBookingsShow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT movie_id, admin_email FROM shows WHERE show_id = ?`)).
		WithArgs("show-1").
		WillReturnRows(sqlmock.NewRows([]string{"movie_id", "admin_email"}).
			AddRow("movie-1", "admin@imovies.local"))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tickets WHERE show_id = ?`)).
		WithArgs("show-1").WillReturnResult(sqlmock.NewResult(0, 12))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM bookings WHERE show_id = ?`)).
		WithArgs("show-1").WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM shows WHERE show_id = ?`)).
		WithArgs("show-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = NewShowRepo(db).DeleteCascade(context.Background(), "movie-1", "show-1", "admin@imovies.local")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCascadeUnknownShow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT movie_id, admin_email FROM shows WHERE show_id = ?`)).
		WithArgs("show-x").
		WillReturnRows(sqlmock.NewRows([]string{"movie_id", "admin_email"}))
	mock.ExpectRollback()

	err = NewShowRepo(db).DeleteCascade(context.Background(), "movie-1", "show-x", "admin@imovies.local")
	assert.ErrorIs(t, err, ErrShowNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCascadeWrongMovie(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT movie_id, admin_email FROM shows WHERE show_id = ?`)).
		WithArgs("show-1").
		WillReturnRows(sqlmock.NewRows([]string{"movie_id", "admin_email"}).
			AddRow("movie-other", "admin@imovies.local"))
	mock.ExpectRollback()

	err = NewShowRepo(db).DeleteCascade(context.Background(), "movie-1", "show-1", "admin@imovies.local")
	assert.ErrorIs(t, err, ErrShowNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCascadeForeignAdmin(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT movie_id, admin_email FROM shows WHERE show_id = ?`)).
		WithArgs("show-1").
		WillReturnRows(sqlmock.NewRows([]string{"movie_id", "admin_email"}).
			AddRow("movie-1", "owner@imovies.local"))
	mock.ExpectRollback()

	err = NewShowRepo(db).DeleteCascade(context.Background(), "movie-1", "show-1", "intruder@imovies.local")
	assert.ErrorIs(t, err, ErrForbidden)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByAdminJoinsMovieName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT s.show_id, s.movie_id, m.movie_name").
		WithArgs("admin@imovies.local").
		WillReturnRows(sqlmock.NewRows([]string{"show_id", "movie_id", "movie_name", "theatre_name", "show_date", "show_time"}).
			AddRow("show-1", "movie-1", "Orbital", "Grand Central", "2026-09-01", "18:00").
			AddRow("show-2", "movie-1", "Orbital", "Grand Central", "2026-09-01", "21:15"))

	shows, err := NewShowRepo(db).ListByAdmin(context.Background(), "admin@imovies.local")
	require.NoError(t, err)
	require.Len(t, shows, 2)
	assert.Equal(t, "Orbital", shows[0].MovieName)
	assert.Equal(t, "21:15", shows[1].ShowTime)
	require.NoError(t, mock.ExpectationsWereMet())
}
