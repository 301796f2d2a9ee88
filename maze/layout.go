package maze

import "github.com/zucenko/mazeball/model"

// Geometry is the size of one cell and the thickness of the walls, in arena
// units.
type Geometry struct {
	CellWidth, CellHeight float64
	// WallThickness applies to interior walls.
	WallThickness float64
	// Border applies to the four outer walls.
	Border float64
}

// ArenaSize is the extent of a rows x cols grid.
func (g Geometry) ArenaSize(rows, cols int) (width, height float64) {
	return float64(cols) * g.CellWidth, float64(rows) * g.CellHeight
}

// CellCenter returns the arena position of the middle of c.
func (g Geometry) CellCenter(c model.Cell) (x, y float64) {
	return float64(c.Col)*g.CellWidth + g.CellWidth/2, float64(c.Row)*g.CellHeight + g.CellHeight/2
}

// WallSpec is an axis-aligned wall rectangle described by its center.
type WallSpec struct {
	CenterX, CenterY float64
	Width, Height    float64
	Boundary         bool
}

// Layout converts the closed edges of grid into walls. The four boundary walls
// come first, then every closed horizontal edge row by row, then every closed
// vertical edge row by row. The output depends only on its inputs.
func Layout(grid *model.Grid, geo Geometry) []WallSpec {
	width, height := geo.ArenaSize(grid.Rows, grid.Cols)
	cw, ch, t := geo.CellWidth, geo.CellHeight, geo.WallThickness

	walls := []WallSpec{
		{CenterX: width / 2, CenterY: 0, Width: width, Height: geo.Border, Boundary: true},
		{CenterX: width / 2, CenterY: height, Width: width, Height: geo.Border, Boundary: true},
		{CenterX: 0, CenterY: height / 2, Width: geo.Border, Height: height, Boundary: true},
		{CenterX: width, CenterY: height / 2, Width: geo.Border, Height: height, Boundary: true},
	}

	for row, edges := range grid.Horizontals {
		for col, open := range edges {
			if open {
				continue
			}
			walls = append(walls, WallSpec{
				CenterX: float64(col)*cw + cw/2,
				CenterY: float64(row)*ch + ch,
				Width:   cw + t,
				Height:  t,
			})
		}
	}

	for row, edges := range grid.Verticals {
		for col, open := range edges {
			if open {
				continue
			}
			walls = append(walls, WallSpec{
				CenterX: float64(col)*cw + cw,
				CenterY: float64(row)*ch + ch/2,
				Width:   t,
				Height:  ch + t,
			})
		}
	}

	return walls
}

// ClosedEdges is the number of interior walls Layout emits for grid.
func ClosedEdges(grid *model.Grid) int {
	total := grid.Rows*(grid.Cols-1) + (grid.Rows-1)*grid.Cols
	return total - grid.OpenEdges()
}
