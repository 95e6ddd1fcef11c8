// Package core declares the Graph type and its constructor.
package core

// Graph is a directed graph over dense integer node IDs, stored as one
// ordered neighbor list per node.
//
// The zero value is an empty graph with no nodes; use NewGraph to size it.
type Graph struct {
	// adjacency[id] lists the heads of edges leaving id, in insertion order.
	adjacency [][]int
}

// NewGraph allocates a Graph with nodeCount nodes and no edges.
// A negative nodeCount is treated as zero.
//
// Complexity: O(nodeCount)
func NewGraph(nodeCount int) *Graph {
	if nodeCount < 0 {
		nodeCount = 0
	}

	return &Graph{adjacency: make([][]int, nodeCount)}
}
