package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten"
)

// Nine draws a nine-slice panel: corners keep their size, edges stretch along
// one axis and the center along both.
type Nine struct {
	image   *ebiten.Image
	cuts    [4]int // slice lines in the source, same on both axes
	Scale   float64
	R, G, B float64
	alpha   float64

	x, y, width, height float64
}

// newPanelNine builds a rounded panel patch in code so no image asset is
// needed.
func newPanelNine(corner int, fill, edge color.RGBA) (*Nine, error) {
	size := corner*2 + 1
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(corner)
	hi := float64(size) - c
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			// distance past the straight middle band, zero inside it
			d := math.Hypot(px-math.Max(c, math.Min(px, hi)), py-math.Max(c, math.Min(py, hi)))
			switch {
			case d > c:
			case d > c-2:
				img.Set(x, y, edge)
			default:
				img.Set(x, y, fill)
			}
		}
	}
	eimg, err := ebiten.NewImageFromImage(img, ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	return &Nine{
		image: eimg,
		cuts:  [4]int{0, corner, corner + 1, size},
		Scale: 1,
		R:     1, G: 1, B: 1,
		alpha: 1,
	}, nil
}

func (n *Nine) SetBounds(x, y, width, height float64) {
	n.x, n.y = x, y
	n.width, n.height = width, height
}

func (n *Nine) Draw(screen *ebiten.Image) {
	xs := n.edges(n.x, n.width)
	ys := n.edges(n.y, n.height)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sw := float64(n.cuts[col+1] - n.cuts[col])
			sh := float64(n.cuts[row+1] - n.cuts[row])
			dw := xs[col+1] - xs[col]
			dh := ys[row+1] - ys[row]
			if sw == 0 || sh == 0 || dw <= 0 || dh <= 0 {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(dw/sw, dh/sh)
			op.GeoM.Translate(xs[col], ys[row])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			patch := n.image.SubImage(image.Rect(n.cuts[col], n.cuts[row], n.cuts[col+1], n.cuts[row+1])).(*ebiten.Image)
			_ = screen.DrawImage(patch, op)
		}
	}
}

// edges maps the source cuts onto a destination span.
func (n *Nine) edges(start, length float64) [4]float64 {
	head := n.Scale * float64(n.cuts[1]-n.cuts[0])
	tail := n.Scale * float64(n.cuts[3]-n.cuts[2])
	return [4]float64{start, start + head, start + length - tail, start + length}
}
