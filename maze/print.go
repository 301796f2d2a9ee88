package maze

import (
	"strings"

	"github.com/zucenko/mazeball/model"
)

// Print draws grid as ASCII art. start and goal cells are marked with S and G.
func Print(grid *model.Grid, start, goal model.Cell) string {
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", grid.Cols) + "\n")

	for row := 0; row < grid.Rows; row++ {
		b.WriteString("|")
		for col := 0; col < grid.Cols; col++ {
			cell := model.Cell{Row: row, Col: col}
			switch cell {
			case start:
				b.WriteString(" S ")
			case goal:
				b.WriteString(" G ")
			default:
				b.WriteString("   ")
			}
			if grid.IsOpen(cell, model.Cell{Row: row, Col: col + 1}) {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n+")

		for col := 0; col < grid.Cols; col++ {
			if grid.IsOpen(model.Cell{Row: row, Col: col}, model.Cell{Row: row + 1, Col: col}) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
