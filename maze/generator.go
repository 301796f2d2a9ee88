/*
Package maze turns an empty model.Grid into a perfect maze and derives the
wall rectangles that make up the playing arena.

Generation is a randomized depth-first traversal (recursive backtracker). The
traversal only opens an edge into an unvisited cell, so the open edges always
form a spanning tree: Rows*Cols-1 passages, no cycles, every cell reachable.
*/
package maze

import (
	"math/rand"
	"time"

	"github.com/zucenko/mazeball/model"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it with an
// unbiased Fisher-Yates shuffle.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// frame is one level of the traversal: a cell and its shuffled neighbours.
type frame struct {
	cell      model.Cell
	neighbors []model.Cell
	next      int
}

// NewRand returns a generator source. A zero seed draws one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// New builds a rows x cols grid and carves a maze into it, starting the
// traversal from a random cell.
func New(rows, cols int, rng *rand.Rand) (*model.Grid, error) {
	grid, err := model.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	start := model.Cell{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	if err := Generate(grid, start, rng); err != nil {
		return nil, err
	}
	return grid, nil
}

// Generate carves a spanning tree into grid rooted at start. It keeps its own
// stack instead of recursing, so the depth is bounded by Rows*Cols on the heap
// and the visiting order is the same as the recursive form.
func Generate(grid *model.Grid, start model.Cell, shuffler Shuffler) error {
	if grid == nil || grid.Rows <= 0 || grid.Cols <= 0 {
		return model.ErrInvalidDimensions
	}
	if !grid.InBounds(start) {
		start = model.Cell{}
	}
	if grid.IsVisited(start.Row, start.Col) {
		return nil
	}

	stack := make([]*frame, 0, grid.Rows*grid.Cols)
	stack = append(stack, enter(grid, start, shuffler))

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.neighbors) {
			stack = stack[:len(stack)-1]
			continue
		}
		next := top.neighbors[top.next]
		top.next++

		if !grid.InBounds(next) || grid.IsVisited(next.Row, next.Col) {
			continue
		}
		if err := grid.OpenEdge(top.cell, next); err != nil {
			return err
		}
		stack = append(stack, enter(grid, next, shuffler))
	}
	return nil
}

// enter marks c visited and returns its frame with all four cardinal
// neighbours in random order. Out-of-bounds neighbours are kept so every cell
// consumes the same amount of randomness.
func enter(grid *model.Grid, c model.Cell, shuffler Shuffler) *frame {
	grid.MarkVisited(c.Row, c.Col)
	neighbors := []model.Cell{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
		{Row: c.Row, Col: c.Col + 1},
	}
	shuffler.Shuffle(len(neighbors), func(i, j int) {
		neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
	})
	return &frame{cell: c, neighbors: neighbors}
}
