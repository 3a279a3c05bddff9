package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"imovies/internal/model"
)

// TheatreRepo manages persistence for theatres.  Shows reference
// theatres by their unique name, so lookups by name are the hot path
// during booking (seat-label validation against the theatre's grids).
type TheatreRepo struct {
	db *sql.DB
}

// NewTheatreRepo constructs a TheatreRepo with the given DB handle.
func NewTheatreRepo(db *sql.DB) *TheatreRepo {
	return &TheatreRepo{db: db}
}

const theatreColumns = `theatre_id, theatre_name, location,
	balcony_price, middle_price, lower_price,
	balcony_rows, balcony_cols, middle_rows, middle_cols, lower_rows, lower_cols,
	admin_email, created_at, updated_at`

func scanTheatre(row interface{ Scan(...any) error }, t *model.Theatre) error {
	return row.Scan(&t.TheatreID, &t.TheatreName, &t.Location,
		&t.BalconyPrice, &t.MiddlePrice, &t.LowerPrice,
		&t.Balcony.Rows, &t.Balcony.Cols, &t.Middle.Rows, &t.Middle.Cols, &t.Lower.Rows, &t.Lower.Cols,
		&t.AdminEmail, &t.CreatedAt, &t.UpdatedAt)
}

// Create inserts a new theatre.  The theatre name is unique; a
// duplicate name yields ErrConflict.
func (r *TheatreRepo) Create(ctx context.Context, t *model.Theatre) error {
	if t.TheatreID == "" {
		t.TheatreID = uuid.NewString()
	}
	const q = `INSERT INTO theatres (theatre_id, theatre_name, location,
	             balcony_price, middle_price, lower_price,
	             balcony_rows, balcony_cols, middle_rows, middle_cols, lower_rows, lower_cols,
	             admin_email)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		t.TheatreID, t.TheatreName, t.Location,
		t.BalconyPrice, t.MiddlePrice, t.LowerPrice,
		t.Balcony.Rows, t.Balcony.Cols, t.Middle.Rows, t.Middle.Cols, t.Lower.Rows, t.Lower.Cols,
		t.AdminEmail)
	if isDuplicateKey(err) {
		return ErrConflict
	}
	return err
}

// GetByName retrieves a theatre by its unique name.  It returns
// ErrTheatreNotFound if there is no matching row.
func (r *TheatreRepo) GetByName(ctx context.Context, name string) (*model.Theatre, error) {
	const q = `SELECT ` + theatreColumns + ` FROM theatres WHERE theatre_name = ?`
	var t model.Theatre
	if err := scanTheatre(r.db.QueryRowContext(ctx, q, name), &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTheatreNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetByID retrieves a theatre by ID.  It returns ErrTheatreNotFound if
// there is no matching row.
func (r *TheatreRepo) GetByID(ctx context.Context, id string) (*model.Theatre, error) {
	const q = `SELECT ` + theatreColumns + ` FROM theatres WHERE theatre_id = ?`
	var t model.Theatre
	if err := scanTheatre(r.db.QueryRowContext(ctx, q, id), &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTheatreNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ListAll returns all theatres ordered by name.
func (r *TheatreRepo) ListAll(ctx context.Context) ([]model.Theatre, error) {
	const q = `SELECT ` + theatreColumns + ` FROM theatres ORDER BY theatre_name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Theatre, 0)
	for rows.Next() {
		var t model.Theatre
		if err := scanTheatre(rows, &t); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
