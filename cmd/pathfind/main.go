// Command pathfind reads a grid and prints the shortest sequence of moves
// from the start marker to the goal marker.
//
// Usage:
//
//	pathfind [flags] [input]
//
// The grid is read from input, or from stdin when input is omitted. The
// output is one line of R, L, D and U actions; it is empty when the goal
// cannot be reached.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/gridroute/config"
	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/metrics"
	"github.com/katalvlaran/gridroute/pathfind"
)

// options holds the flags that are not part of config.Config.
type options struct {
	configFile string
	input      string
	settings   config.Config
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// parseFlags parses args and merges them with the optional config file.
func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	def := config.Default()

	fs := flag.NewFlagSet("pathfind", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	fs.String("wall", def.Markers.Wall, "Wall character")
	fs.String("start", def.Markers.Start, "Start character")
	fs.String("goal", def.Markers.Goal, "Goal character")
	fs.Int("max-expansions", def.Search.MaxExpansions, "Stop after this many expanded cells (0 = no limit)")
	fs.String("log-level", def.Log.Level, "Log level: debug, info, warn, error")
	fs.Bool("metrics", def.Metrics, "Print Prometheus metrics to stderr after the run")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: pathfind [flags] [input]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 1 {
		return options{}, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}
	opts.input = fs.Arg(0)

	settings, err := config.FromFlags(fs, opts.configFile, "config")
	if err != nil {
		return options{}, err
	}
	opts.settings = settings

	return opts, nil
}

// run executes one pathfind invocation.
// Returns an exit code: 0 for success, 1 for input failures, 2 for usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	level, _ := opts.settings.SlogLevel()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var rec *metrics.Recorder
	if opts.settings.Metrics {
		rec = metrics.NewRecorder()
		defer func() {
			if err := rec.WriteText(stderr); err != nil {
				logger.Error("write metrics", "err", err)
			}
		}()
	}

	in, closeIn, err := openInput(opts.input, stdin)
	if err != nil {
		logger.Error("open input", "path", opts.input, "err", err)
		return 1
	}
	defer closeIn()

	grid, err := gridgraph.Decode(in)
	if err != nil {
		logger.Error("read grid", "err", err)
		return 1
	}

	wall, start, goal := opts.settings.MarkerBytes()
	plan, err := pathfind.Solve(context.Background(), grid,
		pathfind.Markers{Wall: wall, Start: start, Goal: goal},
		pathfind.WithMaxExpansions(opts.settings.Search.MaxExpansions),
		pathfind.WithLogger(logger),
		pathfind.WithRecorder(rec),
	)
	if err != nil {
		logger.Error("solve", "err", err)
		return 1
	}
	if !plan.Found {
		logger.Info("goal unreachable", "expanded", plan.Expanded)
	}

	if _, err := fmt.Fprintln(stdout, plan.Actions); err != nil {
		logger.Error("write output", "err", err)
		return 1
	}

	return 0
}

// openInput returns the named file, or stdin when path is empty.
func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}
