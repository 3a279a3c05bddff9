// seatmap.go defines the seat-map value types and the seat-label rules
// shared by the booking flow.  Seat labels are scoped per category per
// show: "<category letter><number>" with the number between 1 and the
// theatre grid's rows × columns (e.g. balcony "B1".."B20" for a 2×10
// grid).  There is no global seat numbering.
package model

import (
	"strconv"
	"strings"
)

// Seating categories of every theatre and show.
const (
	CategoryBalcony = "balcony"
	CategoryMiddle  = "middle"
	CategoryLower   = "lower"
)

// Categories returns the three seating categories in display order.
func Categories() []string {
	return []string{CategoryBalcony, CategoryMiddle, CategoryLower}
}

// categoryPrefix maps each category to the letter its seat labels must
// start with.
var categoryPrefix = map[string]string{
	CategoryBalcony: "B",
	CategoryMiddle:  "M",
	CategoryLower:   "L",
}

// SeatRef names a single seat of a show: its category plus the label
// inside that category.
type SeatRef struct {
	Category  string `json:"category"`
	SeatLabel string `json:"seat_label"`
}

// SeatMap is the per-show availability view: for each category, a map
// from seat label to true for sold seats.  Labels absent from the map
// are free.
type SeatMap map[string]map[string]bool

// NewSeatMap returns an empty seat map with all three category maps
// initialised, matching the shape of a freshly created show.
func NewSeatMap() SeatMap {
	m := make(SeatMap, 3)
	for _, cat := range Categories() {
		m[cat] = map[string]bool{}
	}
	return m
}

// Occupied reports whether the seat is marked sold.
func (m SeatMap) Occupied(category, label string) bool {
	return m[category][label]
}

// SeatSelection is a booking request's requested seats: per category, a
// list of seat labels.
type SeatSelection map[string][]string

// NormalizeSelection trims, upper-cases and deduplicates the labels of
// a selection and drops empty entries.  It returns false when the
// selection names an unknown category or ends up empty.
func NormalizeSelection(sel SeatSelection) (SeatSelection, bool) {
	out := make(SeatSelection, len(sel))
	total := 0
	for cat, labels := range sel {
		if _, ok := categoryPrefix[cat]; !ok {
			return nil, false
		}
		seen := make(map[string]struct{}, len(labels))
		clean := make([]string, 0, len(labels))
		for _, l := range labels {
			l = strings.ToUpper(strings.TrimSpace(l))
			if l == "" {
				continue
			}
			if _, dup := seen[l]; dup {
				continue
			}
			seen[l] = struct{}{}
			clean = append(clean, l)
		}
		if len(clean) > 0 {
			out[cat] = clean
			total += len(clean)
		}
	}
	if total == 0 {
		return nil, false
	}
	return out, true
}

// ValidSeatLabel reports whether a label is well formed for the
// category and falls inside the grid: correct prefix letter followed by
// a number in [1, rows*cols].  Only the canonical spelling of the
// number counts; "B01" or "B+1" would be stored as distinct ticket rows
// from "B1" and must not pass as the same physical seat.
func ValidSeatLabel(category, label string, grid SeatGrid) bool {
	prefix, ok := categoryPrefix[category]
	if !ok {
		return false
	}
	if !strings.HasPrefix(label, prefix) {
		return false
	}
	num := label[len(prefix):]
	if num == "" || num[0] < '1' || num[0] > '9' {
		return false
	}
	for i := 1; i < len(num); i++ {
		if num[i] < '0' || num[i] > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return false
	}
	return uint32(n) <= grid.Capacity()
}

// InvalidSeats validates every seat of a selection against the
// theatre's per-category grids and returns the seats that do not
// exist.  An empty result means the whole selection is bookable as far
// as geometry is concerned.
func InvalidSeats(t *Theatre, sel SeatSelection) []SeatRef {
	var bad []SeatRef
	for _, cat := range Categories() {
		grid, _ := t.Grid(cat)
		for _, label := range sel[cat] {
			if !ValidSeatLabel(cat, label, grid) {
				bad = append(bad, SeatRef{Category: cat, SeatLabel: label})
			}
		}
	}
	return bad
}
