package pathfind

import (
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridroute/metrics"
)

// Sentinel errors for pathfind operations.
var (
	// ErrGridNil indicates a nil *gridgraph.Grid.
	ErrGridNil = errors.New("pathfind: grid is nil")
	// ErrNoStart indicates the grid holds no start marker.
	ErrNoStart = errors.New("pathfind: start marker not found")
	// ErrNoGoal indicates the grid holds no goal marker.
	ErrNoGoal = errors.New("pathfind: goal marker not found")
	// ErrDuplicateMarker indicates the start or goal marker appears more than once.
	ErrDuplicateMarker = errors.New("pathfind: marker appears more than once")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// Markers names the grid characters with special meaning.
// Every other character is open floor.
type Markers struct {
	Wall  byte
	Start byte
	Goal  byte
}

// DefaultMarkers returns '|' walls, 'S' start and 'F' goal.
func DefaultMarkers() Markers {
	return Markers{Wall: '|', Start: 'S', Goal: 'F'}
}

// Plan is the outcome of Solve.
type Plan struct {
	Path     []int  // node IDs from start to goal inclusive; empty when not Found
	Actions  string // one move per step of Path
	Expanded int    // frontier pops performed by A*
	Found    bool
}

// Options configures Solve.
type Options struct {
	// MaxExpansions caps A* frontier pops. 0 means no cap.
	MaxExpansions int

	// Logger receives debug records. Defaults to slog.Default().
	Logger *slog.Logger

	// Recorder observes every search. Nil records nothing.
	Recorder *metrics.Recorder

	// TracerProvider supplies the span tracer. Nil uses the global provider.
	TracerProvider trace.TracerProvider

	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns Options with no limit, the default logger and no metrics.
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}

// WithMaxExpansions bounds A* work; n < 0 yields ErrOptionViolation.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
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

// WithTracerProvider sets the provider Solve takes its tracer from.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		o.TracerProvider = tp
	}
}
