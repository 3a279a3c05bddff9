package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSelection(t *testing.T) {
	sel, ok := NormalizeSelection(SeatSelection{
		CategoryBalcony: {" b1 ", "B2", "b1", ""},
		CategoryMiddle:  {},
	})
	require.True(t, ok)
	assert.Equal(t, SeatSelection{CategoryBalcony: {"B1", "B2"}}, sel)
}

func TestNormalizeSelectionRejectsUnknownCategory(t *testing.T) {
	_, ok := NormalizeSelection(SeatSelection{"vip": {"V1"}})
	assert.False(t, ok)
}

func TestNormalizeSelectionRejectsEmpty(t *testing.T) {
	_, ok := NormalizeSelection(SeatSelection{CategoryBalcony: {"", "  "}})
	assert.False(t, ok)

	_, ok = NormalizeSelection(SeatSelection{})
	assert.False(t, ok)
}

func TestValidSeatLabel(t *testing.T) {
	grid := SeatGrid{Rows: 2, Cols: 10} // B1..B20

	assert.True(t, ValidSeatLabel(CategoryBalcony, "B1", grid))
	assert.True(t, ValidSeatLabel(CategoryBalcony, "B20", grid))
	assert.False(t, ValidSeatLabel(CategoryBalcony, "B21", grid), "beyond capacity")
	assert.False(t, ValidSeatLabel(CategoryBalcony, "B0", grid))
	assert.False(t, ValidSeatLabel(CategoryBalcony, "M3", grid), "wrong prefix")
	assert.False(t, ValidSeatLabel(CategoryBalcony, "B", grid))
	assert.False(t, ValidSeatLabel(CategoryBalcony, "Bx", grid))
	assert.False(t, ValidSeatLabel("vip", "V1", grid))
}

func TestValidSeatLabelRejectsNonCanonicalNumbers(t *testing.T) {
	grid := SeatGrid{Rows: 2, Cols: 10}

	// Aliases of B1 would get their own ticket rows, letting the same
	// physical seat be sold twice.
	assert.False(t, ValidSeatLabel(CategoryBalcony, "B01", grid))
	assert.False(t, ValidSeatLabel(CategoryBalcony, "B001", grid))
	assert.False(t, ValidSeatLabel(CategoryBalcony, "B+1", grid))
	assert.False(t, ValidSeatLabel(CategoryBalcony, "B-1", grid))
	assert.False(t, ValidSeatLabel(CategoryBalcony, "B1 ", grid))
	assert.False(t, ValidSeatLabel(CategoryBalcony, "B999999999999999999999", grid))
}

func TestInvalidSeats(t *testing.T) {
	theatre := &Theatre{
		Balcony: SeatGrid{Rows: 2, Cols: 10},
		Middle:  SeatGrid{Rows: 4, Cols: 12},
		Lower:   SeatGrid{Rows: 3, Cols: 12},
	}
	bad := InvalidSeats(theatre, SeatSelection{
		CategoryBalcony: {"B5", "B99"},
		CategoryLower:   {"L36", "L37"},
	})
	assert.Equal(t, []SeatRef{
		{Category: CategoryBalcony, SeatLabel: "B99"},
		{Category: CategoryLower, SeatLabel: "L37"},
	}, bad)

	assert.Empty(t, InvalidSeats(theatre, SeatSelection{CategoryMiddle: {"M1", "M48"}}))
}

func TestSeatMapOccupied(t *testing.T) {
	m := NewSeatMap()
	require.Len(t, m, 3)
	assert.False(t, m.Occupied(CategoryBalcony, "B1"))

	m[CategoryBalcony]["B1"] = true
	assert.True(t, m.Occupied(CategoryBalcony, "B1"))
	assert.False(t, m.Occupied(CategoryMiddle, "B1"))
}
