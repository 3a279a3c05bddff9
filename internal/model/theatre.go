package model

import "time"

// SeatGrid describes the physical layout of one seating category of a
// theatre: Rows × Cols seats.  Seat labels of the category must fall
// inside this grid.
type SeatGrid struct {
	Rows uint32 `json:"rows"`
	Cols uint32 `json:"columns"`
}

// Capacity returns the number of seats in the grid.
func (g SeatGrid) Capacity() uint32 { return g.Rows * g.Cols }

// Theatre represents a venue owned by an admin.  Each theatre defines a
// price and a seat grid for each of the three seating categories
// (balcony, middle, lower).  Shows reference theatres by their unique
// name.
//
// Fields:
//  TheatreID    - opaque UUID primary key.
//  TheatreName  - unique venue name.
//  Location     - free-form location text.
//  BalconyPrice - per-seat price of the balcony category.
//  MiddlePrice  - per-seat price of the middle category.
//  LowerPrice   - per-seat price of the lower category.
//  Balcony      - seat grid of the balcony category.
//  Middle       - seat grid of the middle category.
//  Lower        - seat grid of the lower category.
//  AdminEmail   - email of the owning admin.
//  CreatedAt    - creation timestamp.
//  UpdatedAt    - last update timestamp.
type Theatre struct {
	TheatreID    string    `json:"theatre_id"`    // theatres.theatre_id
	TheatreName  string    `json:"theatre_name"`  // theatres.theatre_name
	Location     string    `json:"location"`      // theatres.location
	BalconyPrice uint32    `json:"balcony_price"` // theatres.balcony_price
	MiddlePrice  uint32    `json:"middle_price"`  // theatres.middle_price
	LowerPrice   uint32    `json:"lower_price"`   // theatres.lower_price
	Balcony      SeatGrid  `json:"balcony"`       // theatres.balcony_rows / balcony_cols
	Middle       SeatGrid  `json:"middle"`        // theatres.middle_rows / middle_cols
	Lower        SeatGrid  `json:"lower"`         // theatres.lower_rows / lower_cols
	AdminEmail   string    `json:"admin_email"`   // theatres.admin_email
	CreatedAt    time.Time `json:"created_at"`    // theatres.created_at
	UpdatedAt    time.Time `json:"updated_at"`    // theatres.updated_at
}

// Grid returns the seat grid of the given category.  The second return
// value is false for unknown categories.
func (t *Theatre) Grid(category string) (SeatGrid, bool) {
	switch category {
	case CategoryBalcony:
		return t.Balcony, true
	case CategoryMiddle:
		return t.Middle, true
	case CategoryLower:
		return t.Lower, true
	}
	return SeatGrid{}, false
}

// Price returns the per-seat price of the given category.  The second
// return value is false for unknown categories.
func (t *Theatre) Price(category string) (uint32, bool) {
	switch category {
	case CategoryBalcony:
		return t.BalconyPrice, true
	case CategoryMiddle:
		return t.MiddlePrice, true
	case CategoryLower:
		return t.LowerPrice, true
	}
	return 0, false
}
