package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/wordhunt/curate"
	"github.com/katalvlaran/wordhunt/grid"
	"github.com/katalvlaran/wordhunt/internal/logging"
	"github.com/katalvlaran/wordhunt/search"
	"github.com/katalvlaran/wordhunt/trie"
)

var (
	// ErrInvalidMinLength indicates Config.MinWordLength < 1.
	ErrInvalidMinLength = errors.New("solver: minimum word length must be >= 1")
	// ErrInvalidParallelism indicates Config.Parallelism < 1.
	ErrInvalidParallelism = errors.New("solver: parallelism must be >= 1")
)

// Config controls one solve.
type Config struct {
	MinWordLength int
	SortByLength  bool
	Parallelism   int
}

// DefaultConfig returns minimum length 3, longest-first ordering and
// sequential search.
func DefaultConfig() Config {
	return Config{
		MinWordLength: search.DefaultMinWordLength,
		SortByLength:  true,
		Parallelism:   1,
	}
}

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	if c.MinWordLength < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidMinLength, c.MinWordLength)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidParallelism, c.Parallelism)
	}

	return nil
}

// Result is the curated outcome of one solve.
type Result struct {
	// RunID correlates log records of one solve.
	RunID string `json:"run_id" yaml:"run_id"`
	// Words holds one discovery per distinct word in the configured order.
	Words []search.Discovery `json:"words" yaml:"words"`
	// Discoveries counts raw (word, path) finds before deduplication.
	Discoveries int `json:"discoveries" yaml:"discoveries"`
	// Elapsed is the wall time of traversal plus curation.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Solve searches b with idx and curates the discoveries according to cfg.
// The logger is taken from ctx (see logging.WithLogger).
func Solve(ctx context.Context, idx *trie.Index, b *grid.Board, cfg Config) (*Result, error) {
	// 1. Reject bad configuration before any work
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	id := uuid.NewString() // correlates every record of this run
	log := logging.FromContext(ctx).With(slog.String("run_id", id))
	log.Debug("solve started",
		slog.Int("side", boardSide(b)),
		slog.Int("min_word_length", cfg.MinWordLength),
		slog.Int("parallelism", cfg.Parallelism),
	)

	// 2. Traverse
	start := time.Now()
	raw, err := search.Search(b, idx,
		search.WithContext(ctx),
		search.WithMinWordLength(cfg.MinWordLength),
		search.WithParallelism(cfg.Parallelism),
	)
	if err != nil {
		log.Error("search failed", slog.Any("error", err))
		return nil, fmt.Errorf("solver: %w", err)
	}

	// 3. Curate
	words := curate.Curate(raw, cfg.SortByLength)

	res := &Result{
		RunID:       id,
		Words:       words,
		Discoveries: len(raw),
		Elapsed:     time.Since(start),
	}
	log.Info("solve finished",
		slog.Int("words", len(res.Words)),
		slog.Int("discoveries", res.Discoveries),
		slog.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

// SolveWords builds an index from words, keeping those at least
// cfg.MinWordLength long, and solves b with it.
func SolveWords(ctx context.Context, words []string, b *grid.Board, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	idx, err := trie.Build(words, cfg.MinWordLength)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	return Solve(ctx, idx, b, cfg)
}

func boardSide(b *grid.Board) int {
	if b == nil {
		return 0
	}

	return b.Side()
}
