package config

import (
	"fmt"
	"strings"
)

// Validate performs rule validation on the loaded configuration.
// Load calls it automatically; callers that override fields afterwards
// should call it again.
func (c *Config) Validate() error {
	if err := c.Solver.validate(); err != nil {
		return fmt.Errorf("solver: %w", err)
	}
	if strings.TrimSpace(c.Dictionary.Path) == "" {
		return fmt.Errorf("dictionary: path must not be empty")
	}
	if err := c.Replay.validate(); err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

func (s *SolverConfig) validate() error {
	if s.MinWordLength < 1 {
		return fmt.Errorf("min_word_length must be >= 1 (got %d)", s.MinWordLength)
	}
	if s.Parallelism < 1 {
		return fmt.Errorf("parallelism must be >= 1 (got %d)", s.Parallelism)
	}
	if s.Sort != SortLength && s.Sort != SortAlpha {
		return fmt.Errorf("sort must be %q or %q (got %q)", SortLength, SortAlpha, s.Sort)
	}
	if s.ShowTopN < 0 {
		return fmt.Errorf("show_top_n must be >= 0 (got %d)", s.ShowTopN)
	}

	return nil
}

func (r *ReplayConfig) validate() error {
	delays := []struct {
		name string
		v    int64
	}{
		{"move_to_cell_delay", int64(r.MoveToCellDelay)},
		{"press_down_delay", int64(r.PressDownDelay)},
		{"between_cells_delay", int64(r.BetweenCellsDelay)},
		{"before_release_delay", int64(r.BeforeReleaseDelay)},
		{"between_words_delay", int64(r.BetweenWordsDelay)},
		{"smooth_move_duration", int64(r.SmoothMoveDuration)},
		{"startup_delay", int64(r.StartupDelay)},
	}
	for _, d := range delays {
		if d.v < 0 {
			return fmt.Errorf("%s must be >= 0", d.name)
		}
	}

	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "text", "json":
	default:
		return fmt.Errorf("format must be text or json (got %q)", l.Format)
	}
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be debug, info, warn or error (got %q)", l.Level)
	}

	return nil
}
