// Package core provides the directed adjacency-list Graph that every search
// and traversal in gridroute runs on.
//
// Nodes are dense integer IDs in [0, NodeCount). A Graph is sized once at
// construction and then populated by repeated edge insertion:
//
//	g := core.NewGraph(6)
//	g.AddEdge(0, 1)          // one-way 0→1
//	g.AddUndirectedEdge(1, 2) // 1→2 and 2→1
//
// Determinism
//
//	Neighbors returns outgoing IDs in insertion order. Both astar and bfs
//	iterate neighbors in that order, so tie-breaking during search is a
//	function of how the graph was built.
//
// Edges
//
//	Edges are directed and unweighted; every edge carries the same unit
//	step cost. Duplicate edges and self-loops are permitted but are not
//	produced by the gridgraph adapter.
//
// Concurrency
//
//	Graph holds no locks. Build it on one goroutine, then share it
//	read-only; concurrent Neighbors calls are safe, concurrent AddEdge is not.
//
// Complexity:
//
//	NewGraph:          O(V)
//	AddEdge:           O(1) amortized
//	Neighbors:         O(1)
//	HasEdge:           O(deg(a))
//	EdgeCount:         O(V)
package core
