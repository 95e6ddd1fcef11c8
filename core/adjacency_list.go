package core

// AddEdge appends the directed edge a→b.
// IDs are not validated; an ID outside [0, NodeCount) panics on the slice
// index like any other out-of-range access.
//
// Complexity: O(1) amortized
func (g *Graph) AddEdge(a, b int) {
	g.adjacency[a] = append(g.adjacency[a], b)
}

// AddUndirectedEdge inserts both a→b and b→a.
func (g *Graph) AddUndirectedEdge(a, b int) {
	g.AddEdge(a, b)
	g.AddEdge(b, a)
}

// Neighbors returns the outgoing neighbor IDs of id in insertion order.
// The slice aliases internal storage and must not be modified.
//
// Complexity: O(1)
func (g *Graph) Neighbors(id int) []int {
	return g.adjacency[id]
}

// NodeCount returns the number of nodes the graph was sized for.
func (g *Graph) NodeCount() int {
	return len(g.adjacency)
}

// Contains reports whether id is a valid node ID for g.
func (g *Graph) Contains(id int) bool {
	return id >= 0 && id < len(g.adjacency)
}

// EdgeCount returns the total number of directed edges, duplicates included.
//
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adjacency {
		total += len(nbrs)
	}

	return total
}

// HasEdge reports whether the directed edge a→b exists.
// Returns false when a is not a node of g.
//
// Complexity: O(deg(a))
func (g *Graph) HasEdge(a, b int) bool {
	if !g.Contains(a) {
		return false
	}
	for _, nbr := range g.adjacency[a] {
		if nbr == b {
			return true
		}
	}

	return false
}
