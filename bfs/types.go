// Package bfs provides tunable options, the Visitor contract and error
// definitions for breadth-first traversal over a core.Graph.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when the start ID is not a node of the graph.
	ErrStartOutOfRange = errors.New("bfs: start node out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Visitor receives each reachable node exactly once, in breadth-first order.
type Visitor interface {
	Visit(id int)
}

// VisitFunc adapts an ordinary function to the Visitor interface.
// A nil VisitFunc is a no-op.
type VisitFunc func(id int)

// Visit calls f(id).
func (f VisitFunc) Visit(id int) {
	if f != nil {
		f(id)
	}
}

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Traverse is invoked.
type Option func(*Options)

// Options holds parameters and hooks that customize a traversal.
type Options struct {
	// OnEnqueue is called when a node is first discovered and enqueued.
	// Receives the node ID and its depth from the start.
	OnEnqueue func(id int, depth int)

	// MaxDepth, if > 0, stops discovery beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and a no-op OnEnqueue.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(int, int) {},
		MaxDepth:  0,
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id int, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithMaxDepth limits discovery to nodes at most d edges from the start.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Unreached marks a node in Result.Depth that the traversal never discovered.
const Unreached = -1

// Result holds the outcome of a traversal:
//   - Order: nodes in visit sequence.
//   - Depth: dense slice indexed by node ID; the edge distance from the start,
//     or Unreached.
type Result struct {
	Order []int
	Depth []int
}

// Reached reports whether id was visited.
func (r *Result) Reached(id int) bool {
	return id >= 0 && id < len(r.Depth) && r.Depth[id] != Unreached
}
