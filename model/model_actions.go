package model

import "fmt"

// NewGrid returns a grid with every cell unvisited and every edge closed.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}

	visited := make([][]bool, rows)
	verticals := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		visited[r] = make([]bool, cols)
		verticals[r] = make([]bool, cols-1)
	}
	horizontals := make([][]bool, rows-1)
	for r := 0; r < rows-1; r++ {
		horizontals[r] = make([]bool, cols)
	}

	return &Grid{
		Rows:        rows,
		Cols:        cols,
		visited:     visited,
		Verticals:   verticals,
		Horizontals: horizontals,
	}, nil
}

func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// IsVisited reports false for cells outside the grid.
func (g *Grid) IsVisited(row, col int) bool {
	if !g.InBounds(Cell{Row: row, Col: col}) {
		return false
	}
	return g.visited[row][col]
}

func (g *Grid) MarkVisited(row, col int) {
	g.visited[row][col] = true
}

// OpenEdge makes the edge between two grid-adjacent cells passable.
func (g *Grid) OpenEdge(a, b Cell) error {
	edge, err := g.edge(a, b)
	if err != nil {
		return err
	}
	*edge = true
	return nil
}

// IsOpen reports whether a and b are adjacent and the edge between them is open.
func (g *Grid) IsOpen(a, b Cell) bool {
	edge, err := g.edge(a, b)
	if err != nil {
		return false
	}
	return *edge
}

// OpenEdges counts passable edges.
func (g *Grid) OpenEdges() int {
	n := 0
	for _, row := range g.Verticals {
		for _, open := range row {
			if open {
				n++
			}
		}
	}
	for _, row := range g.Horizontals {
		for _, open := range row {
			if open {
				n++
			}
		}
	}
	return n
}

// Links returns the in-bounds neighbours of c reachable through an open edge,
// in up, down, left, right order.
func (g *Grid) Links(c Cell) []Cell {
	links := make([]Cell, 0, 4)
	for _, n := range []Cell{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
		{Row: c.Row, Col: c.Col + 1},
	} {
		if g.IsOpen(c, n) {
			links = append(links, n)
		}
	}
	return links
}

// edge resolves the storage slot for the edge between a and b.
func (g *Grid) edge(a, b Cell) (*bool, error) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return nil, fmt.Errorf("%w: %v-%v out of bounds", ErrInvalidEdge, a, b)
	}
	dr, dc := b.Row-a.Row, b.Col-a.Col
	if abs(dr)+abs(dc) != 1 {
		return nil, fmt.Errorf("%w: %v-%v not adjacent", ErrInvalidEdge, a, b)
	}
	switch {
	case dc == 1:
		return &g.Verticals[a.Row][a.Col], nil
	case dc == -1:
		return &g.Verticals[b.Row][b.Col], nil
	case dr == 1:
		return &g.Horizontals[a.Row][a.Col], nil
	default:
		return &g.Horizontals[b.Row][b.Col], nil
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
