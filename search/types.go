package search

import (
	"context"
	"errors"

	"github.com/katalvlaran/wordhunt/grid"
)

// DefaultMinWordLength is the minimum recorded word length when no option
// overrides it.
const DefaultMinWordLength = 3

var (
	// ErrBoardNil is returned when a nil *grid.Board is passed to Search.
	ErrBoardNil = errors.New("search: board is nil")

	// ErrIndexNil is returned when a nil *trie.Index is passed to Search.
	ErrIndexNil = errors.New("search: index is nil")

	// ErrInvalidMinLength indicates MinWordLength < 1.
	ErrInvalidMinLength = errors.New("search: minimum word length must be >= 1")

	// ErrInvalidParallelism indicates Parallelism < 1.
	ErrInvalidParallelism = errors.New("search: parallelism must be >= 1")
)

// Path is an ordered sequence of distinct, 8-adjacent board coordinates.
type Path []grid.Coord

// Discovery is one dictionary word together with a board path spelling it.
// Several discoveries may share a word when it is reachable by more than
// one path.
type Discovery struct {
	Word string `json:"word" yaml:"word"`
	Path Path   `json:"path" yaml:"path"`
}

// Option configures optional behavior of Search.
type Option func(*Options)

// Options holds configurable parameters for a search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MinWordLength is the shortest word recorded. Default is 3.
	MinWordLength int

	// Parallelism is the number of goroutines exploring start cells.
	// 1 (the default) runs on the caller's goroutine.
	Parallelism int

	// OnDiscover, if non-nil, is invoked for each discovery as it is found.
	// In parallel mode it may be called concurrently from several goroutines.
	// Returning an error aborts the search with that error.
	OnDiscover func(d Discovery) error
}

// DefaultOptions returns Options with a background context, minimum word
// length 3, sequential execution and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MinWordLength: DefaultMinWordLength,
		Parallelism:   1,
	}
}

// WithContext sets the context used for cancellation.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMinWordLength sets the minimum length of recorded words.
func WithMinWordLength(n int) Option {
	return func(o *Options) {
		o.MinWordLength = n
	}
}

// WithParallelism sets the number of goroutines used to explore start cells.
func WithParallelism(n int) Option {
	return func(o *Options) {
		o.Parallelism = n
	}
}

// WithOnDiscover installs fn as a per-discovery hook.
func WithOnDiscover(fn func(d Discovery) error) Option {
	return func(o *Options) {
		o.OnDiscover = fn
	}
}
