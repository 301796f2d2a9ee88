package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/mazeball/model"
)

var testGeometry = Geometry{CellWidth: 100, CellHeight: 100, WallThickness: 10, Border: 20}

func TestLayoutTwoByTwo(t *testing.T) {
	g, err := model.NewGrid(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.OpenEdge(model.Cell{Row: 0, Col: 0}, model.Cell{Row: 0, Col: 1}))

	walls := Layout(g, testGeometry)

	assert.Equal(t, []WallSpec{
		{CenterX: 100, CenterY: 0, Width: 200, Height: 20, Boundary: true},
		{CenterX: 100, CenterY: 200, Width: 200, Height: 20, Boundary: true},
		{CenterX: 0, CenterY: 100, Width: 20, Height: 200, Boundary: true},
		{CenterX: 200, CenterY: 100, Width: 20, Height: 200, Boundary: true},
		// horizontal walls between rows 0 and 1
		{CenterX: 50, CenterY: 100, Width: 110, Height: 10},
		{CenterX: 150, CenterY: 100, Width: 110, Height: 10},
		// only the closed vertical edge of row 1, on the column boundary
		{CenterX: 100, CenterY: 150, Width: 10, Height: 110},
	}, walls)
}

func TestLayoutRectangularCells(t *testing.T) {
	g, err := model.NewGrid(1, 2)
	require.NoError(t, err)

	geo := Geometry{CellWidth: 40, CellHeight: 30, WallThickness: 4, Border: 6}
	walls := Layout(g, geo)
	require.Len(t, walls, 5)

	assert.Equal(t, WallSpec{CenterX: 40, CenterY: 15, Width: 4, Height: 34}, walls[4])
	assert.Equal(t, WallSpec{CenterX: 40, CenterY: 30, Width: 80, Height: 6, Boundary: true}, walls[1])
}

func TestLayoutAllOpenHasOnlyBoundary(t *testing.T) {
	g, err := model.NewGrid(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.OpenEdge(model.Cell{Row: 0, Col: 0}, model.Cell{Row: 0, Col: 1}))
	require.NoError(t, g.OpenEdge(model.Cell{Row: 1, Col: 0}, model.Cell{Row: 1, Col: 1}))
	require.NoError(t, g.OpenEdge(model.Cell{Row: 0, Col: 0}, model.Cell{Row: 1, Col: 0}))
	require.NoError(t, g.OpenEdge(model.Cell{Row: 0, Col: 1}, model.Cell{Row: 1, Col: 1}))

	walls := Layout(g, testGeometry)
	assert.Len(t, walls, 4)
	for _, w := range walls {
		assert.True(t, w.Boundary)
	}
	assert.Equal(t, 0, ClosedEdges(g))
}

func TestLayoutThreeByThreeEndToEnd(t *testing.T) {
	const rows, cols = 3, 3
	for seed := int64(1); seed <= 20; seed++ {
		g, err := New(rows, cols, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		assert.Len(t, reachable(g, model.Cell{}), 9)
		assert.True(t, reachable(g, model.Cell{})[model.Cell{Row: 2, Col: 2}])

		closed := (rows*(cols-1) + (rows-1)*cols) - (rows*cols - 1)
		assert.Equal(t, closed, ClosedEdges(g))

		walls := Layout(g, testGeometry)
		require.Len(t, walls, 4+closed)

		boundary := 0
		for _, w := range walls {
			if w.Boundary {
				boundary++
			}
		}
		assert.Equal(t, 4, boundary)
	}
}

func TestGeometry(t *testing.T) {
	geo := Geometry{CellWidth: 75, CellHeight: 50}

	w, h := geo.ArenaSize(4, 8)
	assert.Equal(t, 600.0, w)
	assert.Equal(t, 200.0, h)

	x, y := geo.CellCenter(model.Cell{Row: 3, Col: 7})
	assert.Equal(t, 562.5, x)
	assert.Equal(t, 175.0, y)
}
