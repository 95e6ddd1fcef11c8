// Package astar defines the Heuristic contract, search options, results and
// sentinel errors for A* search over a core.Graph.
//
// A* finds a minimum-cost path between two nodes of a unit-cost graph,
// steering expansion with an admissible estimate of the remaining cost.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	   • Each node is popped from the frontier at most once.
//	   • Each successful relaxation is one heap push or one heap fix.
//	– Space: O(V)
//	   • One dense per-node record plus a frontier holding each node at most once.
//
// Options:
//
//	– MaxExpansions: stop with ErrExpansionLimit after this many pops (0 = no limit).
//	– OnExpand:      hook per popped node.
//	– OnRelax:       hook per improved neighbor.
//
// Errors (sentinel):
//
//	– ErrGraphNil        if the provided graph pointer is nil.
//	– ErrHeuristicNil    if no Heuristic is supplied.
//	– ErrNodeOutOfRange  if start or goal is not a node of the graph.
//	– ErrOptionViolation if an Option carries an invalid value.
//	– ErrExpansionLimit  if MaxExpansions was reached before the goal.
package astar

import (
	"errors"
	"fmt"
)

// StepCost is the cost of traversing any single edge.
const StepCost = 1

// Sentinel errors returned by Search.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Search.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrHeuristicNil indicates that Search was called without a Heuristic.
	ErrHeuristicNil = errors.New("astar: heuristic is nil")

	// ErrNodeOutOfRange indicates that start or goal lies outside [0, NodeCount).
	ErrNodeOutOfRange = errors.New("astar: node out of range")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit indicates the search stopped after MaxExpansions pops
	// without reaching the goal.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Heuristic estimates the cost of the cheapest path from one node to another.
//
// Implementations must be admissible (never overestimate) for Search to
// return optimal paths. Closed nodes are never reopened, so an inconsistent
// heuristic may also yield a suboptimal path.
type Heuristic interface {
	Estimate(from, to int) int
}

// HeuristicFunc adapts an ordinary function to the Heuristic interface.
type HeuristicFunc func(from, to int) int

// Estimate calls f(from, to).
func (f HeuristicFunc) Estimate(from, to int) int { return f(from, to) }

// Manhattan is the L1 distance between two cells of a row-major grid of the
// given Width, where id = y*Width + x. It is admissible on a 4-connected grid
// with unit step cost. A non-positive Width estimates 0 everywhere.
type Manhattan struct {
	Width int
}

// Estimate returns |Δx| + |Δy| between the cells encoded by from and to.
func (m Manhattan) Estimate(from, to int) int {
	if m.Width <= 0 {
		return 0
	}
	fx, fy := from%m.Width, from/m.Width
	tx, ty := to%m.Width, to/m.Width

	return abs(tx-fx) + abs(ty-fy)
}

// Zero estimates 0 for every pair, which turns Search into uniform-cost search.
var Zero Heuristic = HeuristicFunc(func(int, int) int { return 0 })

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Options configures the behavior of Search.
type Options struct {
	// MaxExpansions caps the number of frontier pops. 0 means no cap.
	MaxExpansions int

	// OnExpand is called for every node popped from the frontier with its g-cost.
	OnExpand func(id, g int)

	// OnRelax is called whenever a cheaper route to a neighbor is recorded.
	OnRelax func(from, to, g int)

	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with no expansion cap and no-op hooks.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		OnExpand:      func(int, int) {},
		OnRelax:       func(int, int, int) {},
	}
}

// WithMaxExpansions bounds the work done by one Search call.
//
//	n > 0: stop with ErrExpansionLimit once n nodes were popped
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a hook run for every popped node.
func WithOnExpand(fn func(id, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a hook run for every improved neighbor.
func WithOnRelax(fn func(from, to, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Result is the outcome of one Search call.
//
// Path runs from start to goal inclusive and is empty when Found is false.
// Cost is the number of steps on Path. Expanded counts frontier pops.
type Result struct {
	Path     []int
	Cost     int
	Expanded int
	Found    bool
}
