package config_test

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	wall, start, goal := cfg.MarkerBytes()
	assert.Equal(t, byte('|'), wall)
	assert.Equal(t, byte('S'), start)
	assert.Equal(t, byte('F'), goal)
	assert.False(t, cfg.Metrics)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(`
markers:
  wall: "#"
search:
  max_expansions: 500
log:
  level: debug
metrics: true
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "#", cfg.Markers.Wall)
	assert.Equal(t, "S", cfg.Markers.Start, "unset keys keep defaults")
	assert.Equal(t, 500, cfg.Search.MaxExpansions)
	assert.True(t, cfg.Metrics)
	lvl, _ := cfg.SlogLevel()
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestParse_EmptyAndUnknown(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Parse(strings.NewReader("colour: red\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fill:\n  max_depth: 3\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Fill.MaxDepth)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOverride(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Override("wall", "#"))
	require.NoError(t, cfg.Override("max-expansions", "12"))
	require.NoError(t, cfg.Override("max-depth", "4"))
	require.NoError(t, cfg.Override("metrics", "true"))
	require.NoError(t, cfg.Override("log-level", "ERROR"))

	assert.Equal(t, "#", cfg.Markers.Wall)
	assert.Equal(t, 12, cfg.Search.MaxExpansions)
	assert.Equal(t, 4, cfg.Fill.MaxDepth)
	assert.True(t, cfg.Metrics)
	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, lvl)

	assert.Error(t, cfg.Override("max-depth", "deep"))
	assert.Error(t, cfg.Override("metrics", "maybe"))
	assert.ErrorIs(t, cfg.Override("colour", "red"), config.ErrUnknownSetting)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		err    error
	}{
		{"EmptyMarker", func(c *config.Config) { c.Markers.Goal = "" }, config.ErrBadMarker},
		{"LongMarker", func(c *config.Config) { c.Markers.Wall = "||" }, config.ErrBadMarker},
		{"SpaceMarker", func(c *config.Config) { c.Markers.Start = " " }, config.ErrBadMarker},
		{"Collision", func(c *config.Config) { c.Markers.Goal = "S" }, config.ErrBadMarker},
		{"BadLevel", func(c *config.Config) { c.Log.Level = "loud" }, config.ErrBadLevel},
		{"NegativeExpansions", func(c *config.Config) { c.Search.MaxExpansions = -1 }, config.ErrNegativeLimit},
		{"NegativeDepth", func(c *config.Config) { c.Fill.MaxDepth = -1 }, config.ErrNegativeLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.err)
		})
	}
}

func TestFromFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte("markers:\n  wall: \"#\"\nsearch:\n  max_expansions: 40\n"), 0o600))

	newFlags := func() *flag.FlagSet {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		fs.String("config", "", "")
		fs.String("wall", "|", "")
		fs.Int("max-expansions", 0, "")
		return fs
	}

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"-config", path, "-max-expansions", "7"}))
	cfg, err := config.FromFlags(fs, path, "config")
	require.NoError(t, err)
	assert.Equal(t, "#", cfg.Markers.Wall, "file value kept when the flag is not set")
	assert.Equal(t, 7, cfg.Search.MaxExpansions, "explicit flag wins over the file")

	fs = newFlags()
	require.NoError(t, fs.Parse(nil))
	cfg, err = config.FromFlags(fs, "")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	fs = newFlags()
	require.NoError(t, fs.Parse([]string{"-wall", "S"}))
	_, err = config.FromFlags(fs, "")
	assert.ErrorIs(t, err, config.ErrBadMarker)
}
