package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountCreateDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'user@imovies.local' for key 'uq_users_email'"))

	_, err = NewUserRepo(db).Create(context.Background(), "user", "User@imovies.local", "pw12345", 4)
	assert.ErrorIs(t, err, ErrEmailExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountCreateReturnsGeneratedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO admins").
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := NewAdminRepo(db).Create(context.Background(), "admin", "Admin@imovies.local ", "secret99", 4)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountGetByEmailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, username, email, password_hash").
		WithArgs("ghost@imovies.local").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"}))

	_, err = NewUserRepo(db).GetByEmail(context.Background(), "Ghost@imovies.local")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountGetByEmailNormalizes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, username, email, password_hash").
		WithArgs("user@imovies.local").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"}).
			AddRow("u-1", "user", "user@imovies.local", "$2a$04$hash", now, now))

	acc, err := NewUserRepo(db).GetByEmail(context.Background(), "  USER@imovies.local ")
	require.NoError(t, err)
	assert.Equal(t, "u-1", acc.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
