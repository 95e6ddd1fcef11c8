package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/bfs"
	"github.com/katalvlaran/gridroute/core"
)

// ExampleTraverse_gridLayers demonstrates BFS layering on a 3×3 grid whose
// node IDs are y*3+x. Visits follow non-decreasing Manhattan distance.
func ExampleTraverse_gridLayers() {
	const w, h = 3, 3
	g := core.NewGraph(w * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := y*w + x
			if x+1 < w {
				g.AddUndirectedEdge(id, id+1)
			}
			if y+1 < h {
				g.AddUndirectedEdge(id, id+w)
			}
		}
	}

	res, err := bfs.Traverse(g, 0, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 1 2 3 2 3 4]
}

// ExampleVisitFunc collects every node of a component through the visitor.
func ExampleVisitFunc() {
	g := core.NewGraph(5)
	g.AddUndirectedEdge(0, 1)
	g.AddUndirectedEdge(1, 2)
	g.AddUndirectedEdge(3, 4)

	var region []int
	_, _ = bfs.Traverse(g, 2, bfs.VisitFunc(func(id int) {
		region = append(region, id)
	}))
	fmt.Println(region)
	// Output:
	// [2 1 0]
}

// ExampleWithMaxDepth stops discovery two hops from the start.
func ExampleWithMaxDepth() {
	g := core.NewGraph(10)
	for i := 0; i < 9; i++ {
		g.AddEdge(i, i+1)
	}

	res, _ := bfs.Traverse(g, 0, nil, bfs.WithMaxDepth(2))
	fmt.Println(res.Order)
	// Output:
	// [0 1 2]
}
