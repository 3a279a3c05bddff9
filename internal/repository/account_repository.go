package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"imovies/internal/model"
	"imovies/internal/utils"
)

// AccountRepo provides credential storage for users and admins.  Both
// live in tables of identical shape; the table name bound at
// construction decides which population the repository serves.
type AccountRepo struct {
	db    *sql.DB
	table string
}

// NewUserRepo returns an AccountRepo over the users table.
func NewUserRepo(db *sql.DB) *AccountRepo { return &AccountRepo{db: db, table: "users"} }

// NewAdminRepo returns an AccountRepo over the admins table.
func NewAdminRepo(db *sql.DB) *AccountRepo { return &AccountRepo{db: db, table: "admins"} }

// Create hashes the password with bcrypt at the given cost and inserts
// the account.  The generated UUID is returned.  ErrEmailExists is
// returned when the normalized email is already registered.
func (r *AccountRepo) Create(ctx context.Context, username, email, password string, cost int) (string, error) {
	email = utils.NormalizeEmail(email)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO "+r.table+" (id, username, email, password_hash) VALUES (?,?,?,?)",
		id, username, email, hash)
	if err != nil {
		if isDuplicateKey(err) {
			return "", ErrEmailExists
		}
		return "", err
	}
	return id, nil
}

// GetByEmail fetches an account by normalized email.  It returns
// ErrAccountNotFound when no row matches.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	email = utils.NormalizeEmail(email)
	var a model.Account
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, email, password_hash, created_at, updated_at FROM "+r.table+" WHERE email=? LIMIT 1",
		email).Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Account{}, ErrAccountNotFound
		}
		return model.Account{}, err
	}
	return a, nil
}
