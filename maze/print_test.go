package maze

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/mazeball/model"
)

func TestPrint(t *testing.T) {
	g, err := model.NewGrid(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.OpenEdge(model.Cell{Row: 0, Col: 0}, model.Cell{Row: 0, Col: 1}))

	expected := "" +
		"+---+---+\n" +
		"| S     |\n" +
		"+---+---+\n" +
		"|   | G |\n" +
		"+---+---+\n"
	assert.Equal(t, expected, Print(g, model.Cell{}, model.Cell{Row: 1, Col: 1}))
}

func TestPrintShape(t *testing.T) {
	g, err := New(4, 6, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(Print(g, model.Cell{}, model.Cell{Row: 3, Col: 5}), "\n"), "\n")
	require.Len(t, lines, 2*4+1)
	for _, line := range lines {
		assert.Len(t, line, 4*6+1)
	}
	assert.Contains(t, lines[1], " S ")
	assert.Contains(t, lines[7], " G ")
}
