package search

import (
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordhunt/grid"
	"github.com/katalvlaran/wordhunt/trie"
)

// walker holds the private state of one depth-first exploration.
// Path and visited are owned exclusively by the walker and restored after
// every recursive step.
type walker struct {
	board   *grid.Board
	opts    *Options
	path    Path
	visited uint64 // bit i set ⇔ cell with row-major index i is on path
	found   []Discovery
}

// Search enumerates every (word, path) pair on b spelled by a word of idx.
// The result is unordered with respect to words and may contain the same word
// several times via different paths; its order is nevertheless deterministic
// (row-major start cells, then the fixed neighbor offset order).
// An empty board or an empty index yields an empty slice and a nil error.
func Search(b *grid.Board, idx *trie.Index, opts ...Option) ([]Discovery, error) {
	// 1. Validate inputs
	if b == nil {
		return nil, ErrBoardNil
	}
	if idx == nil {
		return nil, ErrIndexNil
	}

	// 2. Apply options
	sopts := DefaultOptions()
	for _, fn := range opts {
		fn(&sopts)
	}
	if sopts.MinWordLength < 1 {
		return nil, ErrInvalidMinLength
	}
	if sopts.Parallelism < 1 {
		return nil, ErrInvalidParallelism
	}

	// 3. Explore start cells
	if sopts.Parallelism == 1 || b.Cells() < 2 {
		return searchSequential(b, idx, &sopts)
	}

	return searchParallel(b, idx, &sopts)
}

func searchSequential(b *grid.Board, idx *trie.Index, opts *Options) ([]Discovery, error) {
	w := newWalker(b, opts)
	for i := 0; i < b.Cells(); i++ {
		if err := opts.Ctx.Err(); err != nil {
			return nil, err
		}
		if err := w.start(idx, i); err != nil {
			return nil, err
		}
	}

	return w.found, nil
}

// searchParallel runs one task per start cell and merges per-cell results in
// row-major order.
func searchParallel(b *grid.Board, idx *trie.Index, opts *Options) ([]Discovery, error) {
	perCell := make([][]Discovery, b.Cells())
	g, gctx := errgroup.WithContext(opts.Ctx)
	g.SetLimit(opts.Parallelism)
	for i := 0; i < b.Cells(); i++ {
		i := i // per-iteration copy: go directive is 1.21 (pre-loopvar semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			w := newWalker(b, opts)
			if err := w.start(idx, i); err != nil {
				return err
			}
			perCell[i] = w.found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, ds := range perCell {
		total += len(ds)
	}
	found := make([]Discovery, 0, total)
	for _, ds := range perCell {
		found = append(found, ds...)
	}

	return found, nil
}

func newWalker(b *grid.Board, opts *Options) *walker {
	return &walker{
		board: b,
		opts:  opts,
		path:  make(Path, 0, b.Cells()),
		found: make([]Discovery, 0),
	}
}

// start explores all words beginning at the cell with row-major index i.
func (w *walker) start(idx *trie.Index, i int) error {
	c := w.board.CoordOf(i)
	node := idx.Root().Child(w.board.At(c))
	if node == nil {
		return nil
	}
	w.path = append(w.path[:0], c)
	w.visited = 1 << uint(i)

	return w.explore(c, node)
}

// explore records the word at node, if any, then recurses into every
// unvisited neighbor whose letter continues a dictionary prefix.
func (w *walker) explore(c grid.Coord, node *trie.Node) error {
	// 1. Record a completed word
	if node.IsTerminal() && len(node.Word()) >= w.opts.MinWordLength {
		d := Discovery{Word: node.Word(), Path: slices.Clone(w.path)}
		if w.opts.OnDiscover != nil {
			if err := w.opts.OnDiscover(d); err != nil {
				return fmt.Errorf("search: OnDiscover hook for %q: %w", d.Word, err)
			}
		}
		w.found = append(w.found, d)
	}

	// 2. Extend along trie edges only
	for _, off := range grid.Offsets() {
		next := grid.Coord{Row: c.Row + off[0], Col: c.Col + off[1]}
		if !w.board.InBounds(next) {
			continue
		}
		bit := uint64(1) << uint(w.board.Index(next))
		if w.visited&bit != 0 {
			continue
		}
		child := node.Child(w.board.At(next))
		if child == nil {
			continue
		}

		w.visited |= bit
		w.path = append(w.path, next)
		err := w.explore(next, child)
		w.path = w.path[:len(w.path)-1]
		w.visited &^= bit
		if err != nil {
			return err
		}
	}

	return nil
}
