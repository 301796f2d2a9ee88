package model

import "errors"

var (
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrInvalidEdge       = errors.New("invalid edge")
)

// Cell addresses one grid unit.
type Cell struct {
	Row, Col int
}

// Grid holds the visited flags and the open/closed state of every interior edge
// of a Rows x Cols maze. An edge is open when it is passable.
type Grid struct {
	Rows, Cols int

	visited [][]bool

	// Verticals[row][col] is the edge between (row, col) and (row, col+1).
	Verticals [][]bool
	// Horizontals[row][col] is the edge between (row, col) and (row+1, col).
	Horizontals [][]bool
}
