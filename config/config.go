// Package config holds the settings shared by the pathfind and floodfill
// commands: grid markers, work limits, log level and metrics.
//
// Settings start from Default, are optionally replaced by a YAML file via
// Load, and are finally overridden by explicitly set command-line flags via
// Override. Validate checks the merged result.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration handling.
var (
	// ErrBadMarker indicates a marker that is not one printable, non-space
	// ASCII character, or two markers that collide.
	ErrBadMarker = errors.New("config: marker must be one distinct printable character")
	// ErrBadLevel indicates an unknown log level name.
	ErrBadLevel = errors.New("config: unknown log level")
	// ErrNegativeLimit indicates a negative expansion or depth limit.
	ErrNegativeLimit = errors.New("config: limits cannot be negative")
	// ErrUnknownSetting indicates Override was given a name it does not handle.
	ErrUnknownSetting = errors.New("config: unknown setting")
)

// Config is the merged configuration of one command run.
type Config struct {
	Markers Markers `yaml:"markers"`
	Search  Search  `yaml:"search"`
	Fill    Fill    `yaml:"fill"`
	Log     Log     `yaml:"log"`
	Metrics bool    `yaml:"metrics"`
}

// Markers are the grid characters the pathfinder gives meaning to.
type Markers struct {
	Wall  string `yaml:"wall"`
	Start string `yaml:"start"`
	Goal  string `yaml:"goal"`
}

// Search bounds A* work. MaxExpansions 0 means unbounded.
type Search struct {
	MaxExpansions int `yaml:"max_expansions"`
}

// Fill bounds flood-fill reach. MaxDepth 0 means unbounded.
type Fill struct {
	MaxDepth int `yaml:"max_depth"`
}

// Log selects the slog level by name: debug, info, warn or error.
type Log struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration: '|' walls, 'S' start, 'F' goal,
// no limits, warn-level logging and metrics off.
func Default() Config {
	return Config{
		Markers: Markers{Wall: "|", Start: "S", Goal: "F"},
		Log:     Log{Level: "warn"},
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
// An empty file yields the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes YAML from r on top of Default.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

// Override applies one setting by its command-line flag name.
func (c *Config) Override(name, value string) error {
	switch name {
	case "wall":
		c.Markers.Wall = value
	case "start":
		c.Markers.Start = value
	case "goal":
		c.Markers.Goal = value
	case "log-level":
		c.Log.Level = value
	case "max-expansions", "max-depth":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config: %s: %w", name, err)
		}
		if name == "max-expansions" {
			c.Search.MaxExpansions = n
		} else {
			c.Fill.MaxDepth = n
		}
	case "metrics":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config: %s: %w", name, err)
		}
		c.Metrics = b
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSetting, name)
	}

	return nil
}

// FromFlags builds the configuration of a command run: Default, replaced by
// the YAML file at path when path is non-empty, then overridden by every flag
// the user set explicitly on fs. Flags named in skip are ignored. The result
// is validated.
func FromFlags(fs *flag.FlagSet, path string, skip ...string) (Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return Config{}, err
		}
	}

	ignored := make(map[string]bool, len(skip))
	for _, name := range skip {
		ignored[name] = true
	}
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil || ignored[f.Name] {
			return
		}
		err = cfg.Override(f.Name, f.Value.String())
	})
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first problem with c, or nil.
func (c *Config) Validate() error {
	seen := map[byte]string{}
	for _, m := range []struct{ name, value string }{
		{"wall", c.Markers.Wall},
		{"start", c.Markers.Start},
		{"goal", c.Markers.Goal},
	} {
		if len(m.value) != 1 || m.value[0] <= ' ' || m.value[0] > '~' {
			return fmt.Errorf("%w: %s=%q", ErrBadMarker, m.name, m.value)
		}
		if other, dup := seen[m.value[0]]; dup {
			return fmt.Errorf("%w: %s and %s are both %q", ErrBadMarker, other, m.name, m.value)
		}
		seen[m.value[0]] = m.name
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Search.MaxExpansions < 0 || c.Fill.MaxDepth < 0 {
		return fmt.Errorf("%w: max_expansions=%d max_depth=%d", ErrNegativeLimit, c.Search.MaxExpansions, c.Fill.MaxDepth)
	}

	return nil
}

// MarkerBytes returns the wall, start and goal characters.
// Call Validate first; invalid markers yield zero bytes.
func (c *Config) MarkerBytes() (wall, start, goal byte) {
	first := func(s string) byte {
		if len(s) != 1 {
			return 0
		}
		return s[0]
	}

	return first(c.Markers.Wall), first(c.Markers.Start), first(c.Markers.Goal)
}

// SlogLevel maps Log.Level to a slog.Level; matching is case-insensitive.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadLevel, c.Log.Level)
}
