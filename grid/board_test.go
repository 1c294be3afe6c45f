package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordhunt/grid"
)

// TestNewBoard_Errors verifies that malformed boards are rejected.
func TestNewBoard_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]string
		err  error
	}{
		{"Ragged", [][]string{{"A", "B"}, {"C"}}, grid.ErrNotSquare},
		{"Rectangular", [][]string{{"A", "B", "C"}, {"D", "E", "F"}}, grid.ErrNotSquare},
		{"EmptyRow", [][]string{{}}, grid.ErrNotSquare},
		{"Digit", [][]string{{"A", "1"}, {"C", "D"}}, grid.ErrInvalidLetter},
		{"MultiChar", [][]string{{"QU", "B"}, {"C", "D"}}, grid.ErrInvalidLetter},
		{"Blank", [][]string{{"", "B"}, {"C", "D"}}, grid.ErrInvalidLetter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewBoard(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewBoard(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

func TestNewBoard_TooLarge(t *testing.T) {
	rows := make([]string, grid.MaxSide+1)
	for i := range rows {
		rows[i] = "ABCDEFGHI"
	}
	_, err := grid.Parse(rows...)
	assert.ErrorIs(t, err, grid.ErrTooLarge)
}

func TestNewBoard_EmptyIsValid(t *testing.T) {
	b, err := grid.NewBoard(nil)
	require.NoError(t, err)
	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.Side())
	assert.Equal(t, 0, b.Cells())

	b, err = grid.ParseList("  ")
	require.NoError(t, err)
	assert.True(t, b.Empty())
}

func TestNewBoard_DeepCopyAndUppercase(t *testing.T) {
	rows := [][]string{{"c", "a"}, {"t", "s"}}
	b, err := grid.NewBoard(rows)
	require.NoError(t, err)

	rows[0][0] = "X"
	assert.Equal(t, byte('C'), b.At(grid.Coord{Row: 0, Col: 0}))
	assert.Equal(t, []string{"CA", "TS"}, b.Rows())
	assert.Equal(t, "CA\nTS", b.String())
}

func TestParseList(t *testing.T) {
	b, err := grid.ParseList("cats,AREA/ tops ,SETS")
	require.NoError(t, err)
	assert.Equal(t, 4, b.Side())
	assert.Equal(t, []string{"CATS", "AREA", "TOPS", "SETS"}, b.Rows())
}

func TestIndexAndCoordOf(t *testing.T) {
	b, err := grid.Parse("ABC", "DEF", "GHI")
	require.NoError(t, err)
	for i := 0; i < b.Cells(); i++ {
		c := b.CoordOf(i)
		assert.True(t, b.InBounds(c))
		assert.Equal(t, i, b.Index(c))
	}
	assert.Equal(t, byte('F'), b.At(grid.Coord{Row: 1, Col: 2}))
	assert.False(t, b.InBounds(grid.Coord{Row: 3, Col: 0}))
	assert.False(t, b.InBounds(grid.Coord{Row: 0, Col: -1}))
}

func TestNeighbors_Order(t *testing.T) {
	b, err := grid.Parse("ABC", "DEF", "GHI")
	require.NoError(t, err)

	center := b.Neighbors(nil, grid.Coord{Row: 1, Col: 1})
	assert.Equal(t, []grid.Coord{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}, center)

	corner := b.Neighbors(nil, grid.Coord{Row: 0, Col: 0})
	assert.Equal(t, []grid.Coord{{0, 1}, {1, 0}, {1, 1}}, corner)
}

func TestAdjacent(t *testing.T) {
	c := grid.Coord{Row: 1, Col: 1}
	assert.True(t, c.Adjacent(grid.Coord{Row: 0, Col: 0}))
	assert.True(t, c.Adjacent(grid.Coord{Row: 2, Col: 1}))
	assert.False(t, c.Adjacent(c))
	assert.False(t, c.Adjacent(grid.Coord{Row: 3, Col: 1}))
	assert.False(t, c.Adjacent(grid.Coord{Row: 1, Col: -1}))
}

func TestSpell(t *testing.T) {
	b, err := grid.Parse("CATS", "AREA", "TOPS", "SETS")
	require.NoError(t, err)
	assert.Equal(t, "CAT", b.Spell([]grid.Coord{{0, 0}, {0, 1}, {0, 2}}))
	assert.Equal(t, "", b.Spell(nil))
}
