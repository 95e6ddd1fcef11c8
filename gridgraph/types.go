// Package gridgraph defines core types, predicates and sentinel errors
// for the gridgraph package of github.com/katalvlaran/gridroute.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadRowCount indicates the leading row count is missing, not an integer, or negative.
	ErrBadRowCount = errors.New("gridgraph: row count must be a non-negative integer")
	// ErrShortInput indicates the input ended before all announced rows were read.
	ErrShortInput = errors.New("gridgraph: input ended early")
	// ErrBadToken indicates a trailing token could not be parsed as requested.
	ErrBadToken = errors.New("gridgraph: malformed token")
)

// offsets lists the 4-connected neighbor directions in edge insertion order:
// left, right, up, down.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Cell represents a single grid cell with its coordinates and stored value.
type Cell struct {
	X, Y  int  // Coordinates within the grid
	Value byte // Character at (X, Y)
}

// LinkFunc decides whether the directed edge from → to belongs in the graph.
// Both cells are in bounds and 4-adjacent when it is called.
type LinkFunc func(from, to Cell) bool

// NotWall links two cells when neither holds the wall character.
func NotWall(wall byte) LinkFunc {
	return func(from, to Cell) bool {
		return from.Value != wall && to.Value != wall
	}
}

// SameValue links two cells holding the same character.
func SameValue() LinkFunc {
	return func(from, to Cell) bool {
		return from.Value == to.Value
	}
}

// Grid is a rectangular grid of single-byte cells addressed by (x, y) with
// x growing rightward and y growing downward. Cell (x, y) has node ID
// y*Width + x in every graph built from it.
//
// Cells may be rewritten with Set; dimensions are fixed at construction.
type Grid struct {
	Width, Height int
	cells         [][]byte
}
