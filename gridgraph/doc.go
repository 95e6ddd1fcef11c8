// Package gridgraph treats an ASCII grid of single-byte cells as a graph,
// producing the *core.Graph and node IDs that astar and bfs consume.
//
// What:
//
//   - Grid wraps rectangular rows of text; cell (x, y) has ID y*Width + x.
//   - Decoder/Encode read and write the "row count, then rows" text format.
//   - Graph(link) adds an edge between 4-adjacent cells iff link allows it;
//     NotWall and SameValue are the two predicates the CLIs use.
//
// Why:
//
//   - Pathfinding: walls ('|') get no edges, everything else is open floor.
//   - Flood fill: only equally colored neighbors are linked, so a traversal
//     from the seed stays inside its region.
//
// Complexity:
//
//   - New, Rows, Find:  O(W×H) time and memory.
//   - Graph:            O(W×H) time, O(W×H + E) memory (E ≤ 4×W×H).
//   - ID, Coordinate:   O(1).
//
// Errors:
//
//   - ErrEmptyGrid:      no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadRowCount:    missing, non-numeric or negative row count.
//   - ErrShortInput:     input ended before the announced rows/tokens.
//   - ErrBadToken:       a trailing token has the wrong shape.
package gridgraph
