package core_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/core"
)

// ExampleGraph builds a small square and inspects it.
//
//	0───1
//	│   │
//	3───2
func ExampleGraph() {
	g := core.NewGraph(4)
	g.AddUndirectedEdge(0, 1)
	g.AddUndirectedEdge(1, 2)
	g.AddUndirectedEdge(2, 3)
	g.AddUndirectedEdge(3, 0)

	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())
	fmt.Println("neighbors of 0:", g.Neighbors(0))
	fmt.Println("0→2 exists?", g.HasEdge(0, 2))

	// Output:
	// nodes: 4 edges: 8
	// neighbors of 0: [1 3]
	// 0→2 exists? false
}
