// Package bfs provides breadth-first traversal over a core.Graph.
//
// Traverse visits every node reachable from a start node exactly once, in
// non-decreasing edge distance, and hands each one to a Visitor.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridroute/core"
)

// walker encapsulates mutable traversal state for one call.
type walker struct {
	graph *core.Graph
	opts  Options
	visit Visitor
	queue []int
	res   *Result
}

// Traverse runs breadth-first search on g from start, calling visit.Visit
// once per reachable node in visit order. A nil visit is allowed; the
// returned Result still records order and depths.
//
// Returns ErrGraphNil, ErrStartOutOfRange or ErrOptionViolation for invalid
// input. Visitation itself never fails.
//
// Complexity: O(V + E) time, O(V) memory.
func Traverse(g *core.Graph, start int, visit Visitor, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, g.NodeCount())
	}
	if visit == nil {
		visit = VisitFunc(nil)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		visit: visit,
		queue: make([]int, 0, n),
		res: &Result{
			Order: make([]int, 0, n),
			Depth: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = Unreached
	}

	w.enqueue(start, 0)
	w.loop()

	return w.res, nil
}

// Distances returns the unweighted edge distance from start to every node,
// with Unreached for nodes start cannot reach.
func Distances(g *core.Graph, start int) ([]int, error) {
	res, err := Traverse(g, start, nil)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}

// enqueue marks id discovered at depth d and appends it to the queue.
// Marking on enqueue keeps every node in the queue at most once.
func (w *walker) enqueue(id, d int) {
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, id)
}

// loop drains the queue in FIFO order.
func (w *walker) loop() {
	for head := 0; head < len(w.queue); head++ {
		id := w.queue[head]
		w.res.Order = append(w.res.Order, id)
		w.visit.Visit(id)

		next := w.res.Depth[id] + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(id) {
			if w.res.Depth[nbr] == Unreached {
				w.enqueue(nbr, next)
			}
		}
	}
}
