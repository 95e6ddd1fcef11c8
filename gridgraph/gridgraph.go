package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridroute/core"
)

// New constructs a Grid from non-empty rows of equal length.
// It copies the input so later Set calls never alias caller memory.
// Returns ErrEmptyGrid if there are no rows or the rows are empty,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([][]byte, h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells[y] = []byte(row)
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// Size returns the number of cells, which is also the node count of any
// graph built from the grid.
func (gr *Grid) Size() int {
	return gr.Width * gr.Height
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gr *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < gr.Width && y >= 0 && y < gr.Height
}

// ID maps (x,y) to a row-major node ID: y*Width + x.
// The result is meaningless when (x,y) is out of bounds.
// Complexity: O(1).
func (gr *Grid) ID(x, y int) int {
	return y*gr.Width + x
}

// Coordinate converts a row-major node ID back to (x,y).
// Valid for 0 ≤ id < Size().
// Complexity: O(1).
func (gr *Grid) Coordinate(id int) (x, y int) {
	return id % gr.Width, id / gr.Width
}

// At returns the character at (x,y). ok is false when out of bounds.
func (gr *Grid) At(x, y int) (c byte, ok bool) {
	if !gr.InBounds(x, y) {
		return 0, false
	}

	return gr.cells[y][x], true
}

// Set overwrites the character at (x,y). Out-of-bounds writes are ignored
// and reported as false.
func (gr *Grid) Set(x, y int, c byte) bool {
	if !gr.InBounds(x, y) {
		return false
	}
	gr.cells[y][x] = c

	return true
}

// Cell returns the Cell for a node ID.
func (gr *Grid) Cell(id int) Cell {
	x, y := gr.Coordinate(id)

	return Cell{X: x, Y: y, Value: gr.cells[y][x]}
}

// Rows returns a copy of the grid contents, one string per row.
func (gr *Grid) Rows() []string {
	rows := make([]string, gr.Height)
	for y, row := range gr.cells {
		rows[y] = string(row)
	}

	return rows
}

// Find returns the node IDs of every cell holding c, in row-major order.
func (gr *Grid) Find(c byte) []int {
	var ids []int
	for y, row := range gr.cells {
		for x, v := range row {
			if v == c {
				ids = append(ids, gr.ID(x, y))
			}
		}
	}

	return ids
}

// Graph converts the grid into a directed *core.Graph with one node per cell.
// For every cell it considers the in-bounds neighbors left, right, up and
// down, in that order, and adds the edge cell→neighbor when link allows it.
// Symmetric predicates such as NotWall and SameValue therefore yield
// undirected connectivity.
// Complexity: O(W×H) time, Memory: O(W×H + E).
func (gr *Grid) Graph(link LinkFunc) *core.Graph {
	g := core.NewGraph(gr.Size())
	for y := 0; y < gr.Height; y++ {
		for x := 0; x < gr.Width; x++ {
			from := Cell{X: x, Y: y, Value: gr.cells[y][x]}
			id := gr.ID(x, y)
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if !gr.InBounds(nx, ny) {
					continue
				}
				to := Cell{X: nx, Y: ny, Value: gr.cells[ny][nx]}
				if link(from, to) {
					g.AddEdge(id, gr.ID(nx, ny))
				}
			}
		}
	}

	return g
}
