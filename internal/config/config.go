// Package config holds the wordhunt runtime configuration.
package config

import "time"

// Config is the root application configuration.
type Config struct {
	Solver     SolverConfig     `yaml:"solver"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Replay     ReplayConfig     `yaml:"replay"`
	Log        LogConfig        `yaml:"log"`
}

// SolverConfig holds word-search parameters.
type SolverConfig struct {
	MinWordLength int    `yaml:"min_word_length" env:"WORDHUNT_MIN_WORD_LENGTH" env-default:"3"`
	Sort          string `yaml:"sort"            env:"WORDHUNT_SORT"            env-default:"length"`
	Parallelism   int    `yaml:"parallelism"     env:"WORDHUNT_PARALLELISM"     env-default:"1"`
	ShowTopN      int    `yaml:"show_top_n"      env:"WORDHUNT_SHOW_TOP_N"      env-default:"50"`
}

// Sort orders accepted by SolverConfig.Sort.
const (
	SortLength = "length" // longest first, ties alphabetical
	SortAlpha  = "alpha"  // alphabetical
)

// SortByLength reports whether results are ordered longest first.
func (s SolverConfig) SortByLength() bool {
	return s.Sort == SortLength
}

// DictionaryConfig holds the word list location.
type DictionaryConfig struct {
	Path string `yaml:"path" env:"WORDHUNT_DICTIONARY_PATH" env-default:"/usr/share/dict/words"`
}

// ReplayConfig holds pointer replay timing.
type ReplayConfig struct {
	MoveToCellDelay    time.Duration `yaml:"move_to_cell_delay"    env:"WORDHUNT_REPLAY_MOVE_TO_CELL_DELAY"    env-default:"20ms"`
	PressDownDelay     time.Duration `yaml:"press_down_delay"      env:"WORDHUNT_REPLAY_PRESS_DOWN_DELAY"      env-default:"20ms"`
	BetweenCellsDelay  time.Duration `yaml:"between_cells_delay"   env:"WORDHUNT_REPLAY_BETWEEN_CELLS_DELAY"   env-default:"10ms"`
	BeforeReleaseDelay time.Duration `yaml:"before_release_delay"  env:"WORDHUNT_REPLAY_BEFORE_RELEASE_DELAY"  env-default:"20ms"`
	BetweenWordsDelay  time.Duration `yaml:"between_words_delay"   env:"WORDHUNT_REPLAY_BETWEEN_WORDS_DELAY"   env-default:"50ms"`
	SmoothMoveDuration time.Duration `yaml:"smooth_move_duration"  env:"WORDHUNT_REPLAY_SMOOTH_MOVE_DURATION"  env-default:"30ms"`
	StartupDelay       time.Duration `yaml:"startup_delay"         env:"WORDHUNT_REPLAY_STARTUP_DELAY"         env-default:"3s"`
	NoFocusClick       bool          `yaml:"no_focus_click"        env:"WORDHUNT_REPLAY_NO_FOCUS_CLICK"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"WORDHUNT_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"WORDHUNT_LOG_FORMAT" env-default:"text"`
}
