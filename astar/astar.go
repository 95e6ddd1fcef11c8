// Package astar implements A* search on unit-cost graphs.
//
// Notes on implementation choices:
//
//   - Bookkeeping lives in one dense record per node (g, f, predecessor,
//     state, heap slot) instead of separate sets and maps.
//   - The frontier reads its key from those records, so an improved open
//     node is repositioned with heap.Fix rather than pushed a second time.
//   - Closed nodes are never reopened; optimality therefore assumes an
//     admissible, consistent heuristic.
//   - Ties on f are broken by the lower node ID, which makes results
//     independent of heap internals.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridroute/core"
)

// Search finds a minimum-cost path from start to goal in g, where every edge
// costs StepCost and h estimates the remaining cost to goal.
//
// Returns:
//
//   - Result with Found=true and Path = [start … goal] when a route exists.
//   - Result with Found=false and an empty Path when goal is unreachable;
//     this is not an error.
//   - err for invalid input (ErrGraphNil, ErrHeuristicNil, ErrNodeOutOfRange,
//     ErrOptionViolation) or when MaxExpansions stopped the search
//     (ErrExpansionLimit, with Expanded populated).
//
// Complexity: O((V + E) log V) time, O(V) space.
func Search(g *core.Graph, h Heuristic, start, goal int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if h == nil {
		return Result{}, ErrHeuristicNil
	}
	if !g.Contains(start) {
		return Result{}, fmt.Errorf("%w: start %d not in [0,%d)", ErrNodeOutOfRange, start, g.NodeCount())
	}
	if !g.Contains(goal) {
		return Result{}, fmt.Errorf("%w: goal %d not in [0,%d)", ErrNodeOutOfRange, goal, g.NodeCount())
	}

	r := newRunner(g, h, goal, cfg)
	r.open(start, 0, noNode)

	return r.run()
}

// runner holds the mutable state of a single Search call.
type runner struct {
	g        *core.Graph
	h        Heuristic
	goal     int
	options  Options
	recs     []record
	pq       frontier
	expanded int
}

func newRunner(g *core.Graph, h Heuristic, goal int, cfg Options) *runner {
	recs := make([]record, g.NodeCount())
	for i := range recs {
		recs[i].prev = noNode
		recs[i].index = noNode
	}

	return &runner{
		g:       g,
		h:       h,
		goal:    goal,
		options: cfg,
		recs:    recs,
		pq:      frontier{recs: recs},
	}
}

// run pops the cheapest open node until the goal is reached or the frontier
// is exhausted.
func (r *runner) run() (Result, error) {
	for r.pq.Len() > 0 {
		if limit := r.options.MaxExpansions; limit > 0 && r.expanded >= limit {
			return Result{Expanded: r.expanded}, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, limit)
		}

		cur := heap.Pop(&r.pq).(int)
		r.expanded++
		r.options.OnExpand(cur, r.recs[cur].g)

		if cur == r.goal {
			path := r.reconstruct(cur)
			return Result{
				Path:     path,
				Cost:     r.recs[cur].g,
				Expanded: r.expanded,
				Found:    true,
			}, nil
		}

		r.recs[cur].state = closed
		r.relax(cur)
	}

	return Result{Expanded: r.expanded}, nil
}

// relax offers cur's g-cost plus one step to every neighbor that is not closed.
func (r *runner) relax(cur int) {
	cand := r.recs[cur].g + StepCost
	for _, nbr := range r.g.Neighbors(cur) {
		rec := &r.recs[nbr]
		switch rec.state {
		case closed:
			continue
		case unseen:
			r.open(nbr, cand, cur)
		case open:
			if cand >= rec.g {
				continue
			}
			rec.g = cand
			rec.f = cand + r.h.Estimate(nbr, r.goal)
			rec.prev = cur
			heap.Fix(&r.pq, rec.index)
		}
		r.options.OnRelax(cur, nbr, cand)
	}
}

// open records the first known route to id and pushes it onto the frontier.
func (r *runner) open(id, g, prev int) {
	rec := &r.recs[id]
	rec.g = g
	rec.f = g + r.h.Estimate(id, r.goal)
	rec.prev = prev
	rec.state = open
	heap.Push(&r.pq, id)
}

// reconstruct follows predecessor links from id back to the start and
// returns the path in start→id order.
func (r *runner) reconstruct(id int) []int {
	n := 1
	for cur := id; r.recs[cur].prev != noNode; cur = r.recs[cur].prev {
		n++
	}
	path := make([]int, n)
	for cur := id; ; cur = r.recs[cur].prev {
		n--
		path[n] = cur
		if r.recs[cur].prev == noNode {
			break
		}
	}

	return path
}
