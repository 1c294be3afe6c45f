// Package grid provides the immutable square letter board searched for
// words, together with the 8-directional neighbor geometry used by the
// traversal.
//
// A Board is built from rows of letters, deep-copied and validated once:
//
//   - every row has the same length as the number of rows (square)
//   - the side is at most MaxSide
//   - every cell is a single uppercase letter A–Z
//
// Cells are addressed by zero-based Coord{Row, Col}. Row-major indexing
// (Index / CoordOf) maps cells to 0..Cells()-1, which lets a path's visited
// set live in a single uint64.
//
// A 0×0 board is valid; it has no cells and yields no words.
package grid
