package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/core"
)

// ExampleSearch routes around a wall on a 3×2 grid:
//
//	S|F      0 1 2
//	...      3 4 5
func ExampleSearch() {
	g := core.NewGraph(6)
	g.AddUndirectedEdge(0, 3)
	g.AddUndirectedEdge(3, 4)
	g.AddUndirectedEdge(4, 5)
	g.AddUndirectedEdge(5, 2)

	res, err := astar.Search(g, astar.Manhattan{Width: 3}, 0, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.Path, res.Cost)
	// Output: true [0 3 4 5 2] 4
}

// ExampleSearch_noRoute shows that an unreachable goal is a normal result.
func ExampleSearch_noRoute() {
	g := core.NewGraph(3) // three isolated nodes

	res, err := astar.Search(g, astar.Manhattan{Width: 3}, 0, 2)
	fmt.Println(res.Found, len(res.Path), err)
	// Output: false 0 <nil>
}

// ExampleHeuristicFunc plugs a custom estimate into Search.
func ExampleHeuristicFunc() {
	g := core.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(0, 3)

	hops := astar.HeuristicFunc(func(from, to int) int {
		if from == to {
			return 0
		}
		return 1
	})
	res, _ := astar.Search(g, hops, 0, 3)
	fmt.Println(res.Path)
	// Output: [0 3]
}
