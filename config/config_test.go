package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

	require.NoError(t, err, "a missing config file falls back to defaults")
	require.Equal(t, "info", conf.LogLevel)
	require.Equal(t, "tictactoe", conf.Play.Game)
	require.Equal(t, 9, conf.Play.Depth)
	require.True(t, conf.Play.HumanFirst)
	require.Equal(t, []int{1, 3, 5, 9}, conf.Experiment.Depths)
	require.Equal(t, "results", conf.Experiment.OutputDir)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	contents := `log-level: debug
play:
  game: chess
  depth: 4
  human-first: false
experiment:
  game: chess
  games: 5
  depths: [2, 4]
  baseline-depth: 4
  seed: 99
  max-turns: 80
  output-dir: out
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	conf, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, "debug", conf.LogLevel)
	require.Equal(t, "chess", conf.Play.Game)
	require.Equal(t, 4, conf.Play.Depth)
	require.False(t, conf.Play.HumanFirst)
	require.Equal(t, []int{2, 4}, conf.Experiment.Depths)
	require.Equal(t, uint64(99), conf.Experiment.Seed)
	require.Equal(t, "out", conf.Experiment.OutputDir)
}
