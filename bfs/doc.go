// Package bfs provides breadth-first traversal over a core.Graph with a
// per-node visit callback.
//
// What
//
//   - Visit every node reachable from a start node exactly once.
//   - Nodes at distance k are all visited before any node at distance k+1.
//   - Unreachable nodes are never visited.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: dense slice, node ID → distance (edges) from start, or Unreached
//   - Hooks:
//   - Visitor.Visit (once per node, in visit order)
//   - OnEnqueue     (when a node is first discovered)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Region discovery: floodfill recolors every cell of a same-color region
//     by visiting it.
//   - Unweighted shortest distances: Distances is the oracle the astar tests
//     compare against.
//
// Determinism
//
//	Neighbors are expanded in core.Graph insertion order, so the visit
//	sequence is fully reproducible for a given graph.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)  (queue and depth slice)
//
// Usage
//
//	res, err := bfs.Traverse(g, start, bfs.VisitFunc(func(id int) {
//	    recolor(id)
//	}))
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartOutOfRange  if start is not in [0, NodeCount).
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
package bfs
