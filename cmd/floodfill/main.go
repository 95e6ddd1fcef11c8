// Command floodfill reads a grid and a seed, recolors the seed's
// same-character region and prints the resulting grid.
//
// Usage:
//
//	floodfill [flags] [input]
//
// Input is the grid format followed by the seed row, seed column and fill
// character, read from input or from stdin when input is omitted.
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
	"github.com/katalvlaran/gridroute/floodfill"
	"github.com/katalvlaran/gridroute/metrics"
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

	fs := flag.NewFlagSet("floodfill", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	fs.Int("max-depth", def.Fill.MaxDepth, "Leave cells farther than this many steps from the seed (0 = no limit)")
	fs.String("log-level", def.Log.Level, "Log level: debug, info, warn, error")
	fs.Bool("metrics", def.Metrics, "Print Prometheus metrics to stderr after the run")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: floodfill [flags] [input]")
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

// run executes one floodfill invocation.
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

	in := stdin
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			logger.Error("open input", "path", opts.input, "err", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	grid, seed, err := floodfill.DecodeRequest(in)
	if err != nil {
		logger.Error("read request", "err", err)
		return 1
	}

	rep, err := floodfill.Fill(context.Background(), grid, seed,
		floodfill.WithMaxDepth(opts.settings.Fill.MaxDepth),
		floodfill.WithLogger(logger),
		floodfill.WithRecorder(rec),
	)
	if err != nil {
		logger.Error("fill", "err", err)
		return 1
	}
	logger.Info("filled", "cells", rep.Filled, "original", string(rep.Original))

	if err := grid.Encode(stdout); err != nil {
		logger.Error("write output", "err", err)
		return 1
	}

	return 0
}
