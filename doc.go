// Package gridroute is a small toolkit for moving around ASCII grids:
// shortest routes between two marked cells and flood fills of
// same-character regions.
//
// What is in the box?
//
//	• core/        adjacency-list Graph over dense integer node IDs
//	• astar/       A* search with a pluggable Heuristic (Manhattan, Zero)
//	• bfs/         breadth-first traversal with a visit callback
//	• gridgraph/   grid parsing, coordinate ⇄ ID mapping, grid → Graph
//	• pathfind/    start/goal markers → R/L/D/U action string
//	• floodfill/   seed + color → recolored region
//	• config/      YAML settings merged with command-line flags
//	• metrics/     Prometheus counters for searches and fills
//
// Two commands wire these together: cmd/pathfind and cmd/floodfill. Both
// read the grid text format
//
//	n
//	row_1
//	…
//	row_n
//
// from a file or stdin.
//
// Quick ASCII example:
//
//	S|F
//	...
//
// routes as DRRU: down, right twice, up.
//
//	go install github.com/katalvlaran/gridroute/cmd/pathfind@latest
package gridroute
