package grid

import (
	"errors"
	"fmt"
)

// MaxSide is the largest supported board side. MaxSide² cells fit a uint64
// visited mask.
const MaxSide = 8

// Sentinel errors for board construction.
var (
	// ErrNotSquare indicates a row whose length differs from the row count.
	ErrNotSquare = errors.New("grid: board must be square")
	// ErrTooLarge indicates a side greater than MaxSide.
	ErrTooLarge = errors.New("grid: board side exceeds maximum")
	// ErrInvalidLetter indicates a cell that is not a single letter A–Z.
	ErrInvalidLetter = errors.New("grid: cell must be a single letter A-Z")
)

// Coord addresses one board cell. Row and Col are zero-based.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent reports whether c and o are 8-directional neighbors: they differ
// by at most one in both row and column and are not the same cell.
func (c Coord) Adjacent(o Coord) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if c == o {
		return false
	}

	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// neighborOffsets lists the 8 directions as (dRow, dCol) in the fixed
// enumeration order {-1,0,1}×{-1,0,1} minus (0,0). Search results depend on
// this order when a word is reachable by several paths.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is an immutable square grid of uppercase letters.
type Board struct {
	side  int
	cells []byte // row-major, len = side*side
}
