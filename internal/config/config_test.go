package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordhunt/internal/config"
)

func writeYAML(t *testing.T, doc map[string]any) string {
	t.Helper()
	data, err := yaml.Marshal(doc)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "wordhunt.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WORDHUNT_CONFIG", "")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Solver.MinWordLength)
	assert.Equal(t, config.SortLength, cfg.Solver.Sort)
	assert.True(t, cfg.Solver.SortByLength())
	assert.Equal(t, 1, cfg.Solver.Parallelism)
	assert.Equal(t, 50, cfg.Solver.ShowTopN)
	assert.Equal(t, "/usr/share/dict/words", cfg.Dictionary.Path)
	assert.Equal(t, 20*time.Millisecond, cfg.Replay.MoveToCellDelay)
	assert.Equal(t, 10*time.Millisecond, cfg.Replay.BetweenCellsDelay)
	assert.Equal(t, 50*time.Millisecond, cfg.Replay.BetweenWordsDelay)
	assert.Equal(t, 30*time.Millisecond, cfg.Replay.SmoothMoveDuration)
	assert.Equal(t, 3*time.Second, cfg.Replay.StartupDelay)
	assert.False(t, cfg.Replay.NoFocusClick)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_YAML(t *testing.T) {
	path := writeYAML(t, map[string]any{
		"solver": map[string]any{
			"min_word_length": 4,
			"sort":            "alpha",
			"parallelism":     8,
			"show_top_n":      10,
		},
		"dictionary": map[string]any{"path": "/tmp/words.txt"},
		"replay": map[string]any{
			"startup_delay":  "1s",
			"no_focus_click": true,
		},
		"log": map[string]any{"level": "debug", "format": "json"},
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Solver.MinWordLength)
	assert.False(t, cfg.Solver.SortByLength())
	assert.Equal(t, 8, cfg.Solver.Parallelism)
	assert.Equal(t, 10, cfg.Solver.ShowTopN)
	assert.Equal(t, "/tmp/words.txt", cfg.Dictionary.Path)
	assert.Equal(t, time.Second, cfg.Replay.StartupDelay)
	assert.Equal(t, 20*time.Millisecond, cfg.Replay.PressDownDelay)
	assert.True(t, cfg.Replay.NoFocusClick)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, map[string]any{
		"solver": map[string]any{"min_word_length": 4},
	})
	t.Setenv("WORDHUNT_MIN_WORD_LENGTH", "5")
	t.Setenv("WORDHUNT_CONFIG", path)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Solver.MinWordLength)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name string
		doc  map[string]any
	}{
		{"NegativeMinLength", map[string]any{"solver": map[string]any{"min_word_length": -1}}},
		{"NegativeParallelism", map[string]any{"solver": map[string]any{"parallelism": -2}}},
		{"BadSort", map[string]any{"solver": map[string]any{"sort": "random"}}},
		{"NegativeTopN", map[string]any{"solver": map[string]any{"show_top_n": -1}}},
		{"NegativeDelay", map[string]any{"replay": map[string]any{"between_words_delay": "-5ms"}}},
		{"BadLogFormat", map[string]any{"log": map[string]any{"format": "xml"}}},
		{"BadLogLevel", map[string]any{"log": map[string]any{"level": "loud"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeYAML(t, tc.doc))
			assert.ErrorContains(t, err, "validate")
		})
	}
}

func TestValidate_EmptyDictionaryPath(t *testing.T) {
	t.Setenv("WORDHUNT_CONFIG", "")
	cfg, err := config.Load("")
	require.NoError(t, err)

	cfg.Dictionary.Path = " "
	assert.ErrorContains(t, cfg.Validate(), "dictionary")
}
