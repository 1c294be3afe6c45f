// Package search implements the grid traversal engine: a depth-first search
// over a grid.Board driven by a trie.Index, producing every (word, path)
// discovery on the board.
//
// What:
//
//   - Search(board, index, opts...): for every start cell in row-major order
//     whose letter has a root edge, explore depth-first while holding the
//     current trie node, the path so far, and a visited mask. A terminal node
//     whose word is at least MinWordLength long is recorded together with a
//     copy of the path. Neighbors are tried in the fixed grid offset order and
//     only followed when the trie has a matching edge.
//   - State is restored on every return, so sibling branches always see a
//     clean path and visited mask.
//
// Why the search terminates quickly: recursion follows existing trie edges
// only, so the explored space is bounded by the dictionary's structure
// rather than the 8^depth space of raw grid paths. Depth is bounded by
// both MaxWordLen of the index and the number of cells.
//
// Output order is deterministic: row-major start cells, then offset order
// at each level. WithParallelism fans start cells out over goroutines, each
// with private path state, and concatenates per-cell results in row-major
// order, so parallel and sequential runs return identical slices.
//
// Options:
//
//   - WithContext(ctx)          cancellation, checked before each start cell
//   - WithMinWordLength(n)      minimum recorded word length (default 3)
//   - WithParallelism(n)        number of worker goroutines (default 1)
//   - WithOnDiscover(fn)        hook per discovery; error aborts the search
//
// Errors:
//
//   - ErrBoardNil, ErrIndexNil
//   - ErrInvalidMinLength       MinWordLength < 1
//   - ErrInvalidParallelism     Parallelism < 1
//   - context.Canceled / DeadlineExceeded
//   - any error returned by OnDiscover, wrapped
package search
