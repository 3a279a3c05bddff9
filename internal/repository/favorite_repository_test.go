package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteAddIsIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Second insert of the same pair hits ON DUPLICATE KEY UPDATE and
	// affects zero rows; Add must succeed either way.
	insert := regexp.QuoteMeta(`INSERT INTO favorites (movie_id, user_email) VALUES (?, ?)`)
	mock.ExpectExec(insert).WithArgs("movie-1", "user@imovies.local").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(insert).WithArgs("movie-1", "user@imovies.local").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewFavoriteRepo(db)
	require.NoError(t, repo.Add(context.Background(), "movie-1", "user@imovies.local"))
	require.NoError(t, repo.Add(context.Background(), "movie-1", "user@imovies.local"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRemoveMissingIsSilent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM favorites WHERE movie_id = ? AND user_email = ?`)).
		WithArgs("movie-1", "user@imovies.local").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewFavoriteRepo(db).Remove(context.Background(), "movie-1", "user@imovies.local")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("FROM favorites f").
		WithArgs("user@imovies.local").
		WillReturnRows(sqlmock.NewRows([]string{
			"movie_id", "movie_name", "description", "genres", "release_date",
			"runtime", "certification", "media", "admin_email", "created_at", "updated_at",
		}).AddRow("movie-1", "Orbital", "desc", "Sci-Fi", "2026-03-13",
			141, "PG-13", "https://img", "admin@imovies.local", now, now))

	movies, err := NewFavoriteRepo(db).ListByUser(context.Background(), "user@imovies.local")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Orbital", movies[0].MovieName)
	require.NoError(t, mock.ExpectationsWereMet())
}
