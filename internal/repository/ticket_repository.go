// ticket_repository.go implements the per-show seat map.  Every sold
// seat is one row of the tickets table keyed by (show_id, category,
// seat_label) with a unique index over the triple.  Selling a seat is
// therefore an INSERT that only succeeds while the seat is free: two
// bookings racing for the same seat cannot both win, the loser's
// transaction fails on the duplicate key and rolls back.
package repository

import (
	"context"
	"database/sql"
	"strings"

	"imovies/internal/model"
)

// TicketRepo encapsulates database operations on the tickets table.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo constructs a TicketRepo given a DB handle.
func NewTicketRepo(db *sql.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

// SeatMap loads the full availability view of a show: for each of the
// three categories, the labels of all sold seats.  Categories without
// sales are present as empty maps.  Callers must verify the show
// exists; an unknown show ID simply yields an empty map.
func (r *TicketRepo) SeatMap(ctx context.Context, showID string) (model.SeatMap, error) {
	const q = `SELECT category, seat_label FROM tickets WHERE show_id = ?`
	rows, err := r.db.QueryContext(ctx, q, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	m := model.NewSeatMap()
	for rows.Next() {
		var cat, label string
		if err := rows.Scan(&cat, &label); err != nil {
			return nil, err
		}
		m[cat][label] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// SoldSeatsTx returns the subset of the requested selection that is
// already sold for the show.  It runs inside the caller's transaction
// so the answer stays consistent with the inserts that follow.  An
// empty result means every requested seat was still free at the time of
// the query; the unique key on tickets remains the final arbiter.
func (r *TicketRepo) SoldSeatsTx(ctx context.Context, tx *sql.Tx, showID string, sel model.SeatSelection) ([]model.SeatRef, error) {
	var preds []string
	args := []interface{}{showID}
	for _, cat := range model.Categories() {
		labels := sel[cat]
		if len(labels) == 0 {
			continue
		}
		placeholders := strings.Repeat("?,", len(labels))
		placeholders = placeholders[:len(placeholders)-1]
		preds = append(preds, "(category = ? AND seat_label IN ("+placeholders+"))")
		args = append(args, cat)
		for _, l := range labels {
			args = append(args, l)
		}
	}
	if len(preds) == 0 {
		return []model.SeatRef{}, nil
	}
	query := `SELECT category, seat_label FROM tickets WHERE show_id = ? AND (` + strings.Join(preds, " OR ") + `)`
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sold := make([]model.SeatRef, 0)
	for rows.Next() {
		var ref model.SeatRef
		if err := rows.Scan(&ref.Category, &ref.SeatLabel); err != nil {
			return nil, err
		}
		sold = append(sold, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sold, nil
}

// CreateBulkTx inserts one ticket row per sold seat in a single
// statement within the caller's transaction.  When any requested seat
// was sold by a concurrent booking between the availability check and
// this insert, the unique key fires and ErrSeatConflict is returned;
// the caller must roll back so no subset of the seats is sold.
func (r *TicketRepo) CreateBulkTx(ctx context.Context, tx *sql.Tx, showID, bookingID string, sel model.SeatSelection) error {
	query := `INSERT INTO tickets (show_id, category, seat_label, booking_id) VALUES `
	args := make([]interface{}, 0)
	for _, cat := range model.Categories() {
		for _, label := range sel[cat] {
			if len(args) > 0 {
				query += ","
			}
			query += "(?, ?, ?, ?)"
			args = append(args, showID, cat, label, bookingID)
		}
	}
	if len(args) == 0 {
		return nil
	}
	_, err := tx.ExecContext(ctx, query, args...)
	if isDuplicateKey(err) {
		return ErrSeatConflict
	}
	return err
}

// SeatsByBookings loads the seats of a set of bookings in one query and
// groups them per booking and category.  It is used to render booking
// listings without a query per booking.
func (r *TicketRepo) SeatsByBookings(ctx context.Context, bookingIDs []string) (map[string]model.SeatSelection, error) {
	out := make(map[string]model.SeatSelection, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return out, nil
	}
	placeholders := strings.Repeat("?,", len(bookingIDs))
	placeholders = placeholders[:len(placeholders)-1]
	query := `SELECT booking_id, category, seat_label FROM tickets
	          WHERE booking_id IN (` + placeholders + `)
	          ORDER BY booking_id, category, seat_label`
	args := make([]interface{}, 0, len(bookingIDs))
	for _, id := range bookingIDs {
		args = append(args, id)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var bid, cat, label string
		if err := rows.Scan(&bid, &cat, &label); err != nil {
			return nil, err
		}
		if out[bid] == nil {
			out[bid] = model.SeatSelection{}
		}
		out[bid][cat] = append(out[bid][cat], label)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
