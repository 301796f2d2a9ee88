package main

import (
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	winText  = "You win!"
	hintText = "press R to play again"
)

func loadFace(size float64) (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	const dpi = 72
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}

func prepareTextImage(face font.Face, s string) (*ebiten.Image, error) {
	bounds, _ := font.BoundString(face, s)
	w := (bounds.Max.X - bounds.Min.X).Ceil() + 10
	h := (bounds.Max.Y - bounds.Min.Y).Ceil() + 10
	image, err := ebiten.NewImage(w, h, ebiten.FilterLinear)
	if err != nil {
		return nil, err
	}
	text.Draw(image, s, face, 5-bounds.Min.X.Floor(), 5-bounds.Min.Y.Floor(), color.White)
	return image, nil
}

// Banner is the win message. It stays hidden until ShowWin.
type Banner struct {
	game    *Game
	label   *ebiten.Image
	hint    *ebiten.Image
	panel   *Nine
	visible bool

	alpha     float64
	hintAlpha float64
	offset    float64
}

func newBanner(g *Game) (*Banner, error) {
	big, err := loadFace(48)
	if err != nil {
		return nil, err
	}
	small, err := loadFace(16)
	if err != nil {
		return nil, err
	}
	label, err := prepareTextImage(big, winText)
	if err != nil {
		return nil, err
	}
	hint, err := prepareTextImage(small, hintText)
	if err != nil {
		return nil, err
	}
	panel, err := newPanelNine(12, color.RGBA{20, 20, 30, 220}, color.RGBA{240, 200, 60, 255})
	if err != nil {
		return nil, err
	}
	return &Banner{game: g, label: label, hint: hint, panel: panel}, nil
}

// ShowWin fades the banner in, then the restart hint.
func (b *Banner) ShowWin() {
	if b.visible {
		return
	}
	b.visible = true

	fade := gween.New(0, 1, 0.6, ease.OutQuad)
	fadeAction := &Action{onChange: func(v float32) { b.alpha = float64(v) }}
	fadeAction.addOnFinish(func() { log.Debug("win banner shown") })

	hint := gween.New(0, 1, 0.4, ease.Linear)
	hintAction := fadeAction.next(hint)
	hintAction.onChange = func(v float32) { b.hintAlpha = float64(v) }

	slide := gween.New(-60, 0, 0.8, ease.OutBounce)
	slideAction := &Action{onChange: func(v float32) { b.offset = float64(v) }}

	b.game.Tweens[fade] = fadeAction
	b.game.Tweens[slide] = slideAction
}

func (b *Banner) Hide() {
	b.visible = false
	b.alpha, b.hintAlpha, b.offset = 0, 0, 0
}

func (b *Banner) Draw(screen *ebiten.Image) {
	if !b.visible {
		return
	}
	sw, sh := screen.Size()
	lw, lh := b.label.Size()
	hw, hh := b.hint.Size()

	pw := float64(lw) + 60
	ph := float64(lh+hh) + 40
	px := (float64(sw) - pw) / 2
	py := (float64(sh)-ph)/2 + b.offset

	b.panel.alpha = b.alpha
	b.panel.SetBounds(px, py, pw, ph)
	b.panel.Draw(screen)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(px+(pw-float64(lw))/2, py+15)
	op.ColorM.Scale(1, 0.85, 0.3, b.alpha)
	_ = screen.DrawImage(b.label, op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(px+(pw-float64(hw))/2, py+20+float64(lh))
	op.ColorM.Scale(1, 1, 1, b.hintAlpha)
	_ = screen.DrawImage(b.hint, op)
}
