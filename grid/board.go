package grid

import (
	"fmt"
	"strings"
)

// NewBoard constructs a Board from rows of single-letter strings. Lowercase
// letters are accepted and stored uppercased; the input is not retained.
// Returns ErrNotSquare, ErrTooLarge or ErrInvalidLetter on malformed input.
// An empty rows slice produces a valid 0×0 board.
// Complexity: O(side²).
func NewBoard(rows [][]string) (*Board, error) {
	side := len(rows)
	if side > MaxSide {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, side, MaxSide)
	}
	cells := make([]byte, 0, side*side)
	for r, row := range rows {
		if len(row) != side {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, r, len(row), side)
		}
		for c, s := range row {
			if len(s) != 1 {
				return nil, fmt.Errorf("%w: cell %v is %q", ErrInvalidLetter, Coord{r, c}, s)
			}
			l, ok := normalize(s[0])
			if !ok {
				return nil, fmt.Errorf("%w: cell %v is %q", ErrInvalidLetter, Coord{r, c}, s)
			}
			cells = append(cells, l)
		}
	}

	return &Board{side: side, cells: cells}, nil
}

// Parse builds a Board from one string per row, e.g. "CATS", "AREA", ...
// Surrounding whitespace in each row is ignored.
func Parse(rows ...string) (*Board, error) {
	grid := make([][]string, len(rows))
	for i, row := range rows {
		row = strings.TrimSpace(row)
		cells := make([]string, len(row))
		for j := 0; j < len(row); j++ {
			cells[j] = row[j : j+1]
		}
		grid[i] = cells
	}

	return NewBoard(grid)
}

// ParseList builds a Board from a single comma- or slash-separated list of
// rows, e.g. "CATS,AREA,TOPS,SETS". An empty string yields a 0×0 board.
func ParseList(s string) (*Board, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NewBoard(nil)
	}
	rows := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '/' })

	return Parse(rows...)
}

func normalize(b byte) (byte, bool) {
	switch {
	case b >= 'A' && b <= 'Z':
		return b, true
	case b >= 'a' && b <= 'z':
		return b - 'a' + 'A', true
	default:
		return 0, false
	}
}

// Side returns the number of rows (equal to the number of columns).
func (b *Board) Side() int { return b.side }

// Cells returns the total number of cells, side².
func (b *Board) Cells() int { return len(b.cells) }

// Empty reports whether the board has no cells.
func (b *Board) Empty() bool { return len(b.cells) == 0 }

// InBounds reports whether c lies on the board.
// Complexity: O(1).
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.side && c.Col >= 0 && c.Col < b.side
}

// At returns the letter at c. It panics if c is out of bounds.
func (b *Board) At(c Coord) byte {
	return b.cells[b.Index(c)]
}

// Index maps c to its row-major index: Row*side + Col.
// Complexity: O(1).
func (b *Board) Index(c Coord) int {
	return c.Row*b.side + c.Col
}

// CoordOf converts a row-major index back to a Coord.
// Complexity: O(1).
func (b *Board) CoordOf(idx int) Coord {
	return Coord{Row: idx / b.side, Col: idx % b.side}
}

// Neighbors appends to dst the in-bounds 8-directional neighbors of c in the
// fixed offset order and returns the extended slice.
func (b *Board) Neighbors(dst []Coord, c Coord) []Coord {
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if b.InBounds(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// Rows returns a fresh copy of the board as one string per row.
func (b *Board) Rows() []string {
	rows := make([]string, b.side)
	for r := 0; r < b.side; r++ {
		rows[r] = string(b.cells[r*b.side : (r+1)*b.side])
	}

	return rows
}

// Spell concatenates the letters along path.
func (b *Board) Spell(path []Coord) string {
	var sb strings.Builder
	sb.Grow(len(path))
	for _, c := range path {
		sb.WriteByte(b.At(c))
	}

	return sb.String()
}

// String renders the board as rows separated by newlines.
func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}

// Offsets returns the 8 neighbor offsets as (dRow, dCol) in enumeration
// order. The traversal iterates these directly to avoid per-cell allocation.
func Offsets() [8][2]int {
	return neighborOffsets
}
