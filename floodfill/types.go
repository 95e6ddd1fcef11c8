package floodfill

import (
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridroute/metrics"
)

// Sentinel errors for floodfill operations.
var (
	// ErrGridNil indicates a nil *gridgraph.Grid.
	ErrGridNil = errors.New("floodfill: grid is nil")
	// ErrSeedOutOfRange indicates seed coordinates outside the grid.
	ErrSeedOutOfRange = errors.New("floodfill: seed outside grid")
	// ErrBadSeed indicates the seed row, column or color could not be read.
	ErrBadSeed = errors.New("floodfill: malformed seed")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("floodfill: invalid option supplied")
)

// Seed is the starting cell of a fill and the character to paint.
type Seed struct {
	Row, Col int
	Color    byte
}

// Report summarizes one Fill.
type Report struct {
	Filled   int  // cells rewritten, including the seed
	Original byte // character the seed held before the fill
}

// Options configures Fill.
type Options struct {
	// MaxDepth, if > 0, leaves cells farther than MaxDepth steps from the seed
	// untouched.
	MaxDepth int

	Logger         *slog.Logger
	Recorder       *metrics.Recorder
	TracerProvider trace.TracerProvider

	err error
}

// Option represents a functional option for configuring Fill.
type Option func(*Options)

// DefaultOptions returns Options with no depth limit, the default logger and
// no metrics.
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}

// WithMaxDepth bounds the fill radius; d < 0 yields ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithLogger sets the logger; nil keeps the current one.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *Options) {
		o.Recorder = r
	}
}

// WithTracerProvider sets the provider Fill takes its tracer from.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		o.TracerProvider = tp
	}
}
