package main

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/zucenko/mazeball/arena"
	"github.com/zucenko/mazeball/config"
	"github.com/zucenko/mazeball/maze"
)

const (
	tick = 1.0 / 60

	// held keys repeat after keyDelay ticks, every keyInterval ticks
	keyDelay    = 15
	keyInterval = 4

	dotRadius = 32
)

func HexToF32(u uint32) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b}
}

type GameColor struct {
	r, g, b float64
}

func (c GameColor) RGBA() color.RGBA {
	return color.RGBA{uint8(c.r * 255), uint8(c.g * 255), uint8(c.b * 255), 255}
}

var (
	COLOR_BACKGROUND = HexToF32(0x464646)
	COLOR_WALL       = HexToF32(0xedbc1e)
	COLOR_BOUNDARY   = HexToF32(0x444444)
	COLOR_BALL       = HexToF32(0xfa3636)
	COLOR_GOAL       = HexToF32(0x0abd38)
)

func roleColor(r arena.Role) GameColor {
	switch r {
	case arena.ROLE_WALL:
		return COLOR_WALL
	case arena.ROLE_BOUNDARY:
		return COLOR_BOUNDARY
	case arena.ROLE_BALL:
		return COLOR_BALL
	case arena.ROLE_GOAL:
		return COLOR_GOAL
	default:
		return HexToF32(0xffffff)
	}
}

var keyMap = map[ebiten.Key]arena.Key{
	ebiten.KeyW:     arena.KEY_W,
	ebiten.KeyA:     arena.KEY_A,
	ebiten.KeyS:     arena.KEY_S,
	ebiten.KeyD:     arena.KEY_D,
	ebiten.KeyUp:    arena.KEY_UP,
	ebiten.KeyDown:  arena.KEY_DOWN,
	ebiten.KeyLeft:  arena.KEY_LEFT,
	ebiten.KeyRight: arena.KEY_RIGHT,
}

type Game struct {
	cfg     config.Config
	rng     *rand.Rand
	session *session
	banner  *Banner
	strokes map[*Stroke]struct{}
	Tweens  map[*gween.Tween]*Action

	pixel *ebiten.Image
	dot   *ebiten.Image
}

func newGame(cfg config.Config) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		rng:     maze.NewRand(cfg.Seed),
		strokes: map[*Stroke]struct{}{},
		Tweens:  make(map[*gween.Tween]*Action),
	}
	var err error
	if g.banner, err = newBanner(g); err != nil {
		return nil, err
	}
	if g.pixel, err = ebiten.NewImage(1, 1, ebiten.FilterDefault); err != nil {
		return nil, err
	}
	if err = g.pixel.Fill(color.White); err != nil {
		return nil, err
	}
	if g.dot, err = newDotImage(dotRadius); err != nil {
		return nil, err
	}
	if err = g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

func newDotImage(radius int) (*ebiten.Image, error) {
	size := radius * 2
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(radius)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r) <= r {
				img.Set(x, y, color.White)
			}
		}
	}
	return ebiten.NewImageFromImage(img, ebiten.FilterLinear)
}

// restart drops the current arena and builds a new maze from the shared rng.
func (g *Game) restart() error {
	s, err := newSession(g.cfg, g.rng, g.banner)
	if err != nil {
		return err
	}
	g.session = s
	g.banner.Hide()
	g.Tweens = make(map[*gween.Tween]*Action)
	g.strokes = map[*Stroke]struct{}{}
	log.WithField("arena", s.Arena.ID).Info("new maze")
	if log.IsLevelEnabled(log.DebugLevel) {
		scene := s.Arena.Scene
		log.Debugf("new maze\n%s", maze.Print(scene.Grid, scene.Start, scene.Goal))
	}
	return nil
}

func isKeyTriggered(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	return d >= keyDelay && (d-keyDelay)%keyInterval == 0
}

func (g *Game) updateKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) && g.session.Game.State == arena.WON {
		return g.restart()
	}
	for ek, k := range keyMap {
		if isKeyTriggered(ek) {
			g.session.Game.OnKeyDown(k)
		}
	}
	return nil
}

func (g *Game) update(screen *ebiten.Image) error {
	g.updateTweens(tick)

	if err := g.updateKeys(); err != nil {
		return err
	}
	g.updateStrokes()
	g.session.World.Step(tick)

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	if err := screen.Fill(COLOR_BACKGROUND.RGBA()); err != nil {
		log.Errorf("fill: %v", err)
	}

	for _, e := range g.session.Arena.Entities {
		if g.cfg.Wireframe {
			g.drawOutline(screen, e)
		} else {
			g.drawSolid(screen, e)
		}
	}

	g.banner.Draw(screen)

	ebitenutil.DebugPrintAt(screen, g.session.Game.State.Name(), 4, 0)
	return nil
}

func (g *Game) drawSolid(screen *ebiten.Image, e arena.Entity) {
	pos := e.Body.Position()
	c := roleColor(e.Spec.Role)

	op := &ebiten.DrawImageOptions{}
	img := g.pixel
	switch e.Spec.Shape {
	case arena.SHAPE_CIRCLE:
		img = g.dot
		op.GeoM.Translate(-dotRadius, -dotRadius)
		op.GeoM.Scale(e.Spec.Radius/dotRadius, e.Spec.Radius/dotRadius)
	default:
		op.GeoM.Translate(-0.5, -0.5)
		op.GeoM.Scale(e.Spec.Width, e.Spec.Height)
	}
	op.GeoM.Rotate(e.Body.Angle())
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorM.Scale(c.r, c.g, c.b, 1)
	_ = screen.DrawImage(img, op)
}

func (g *Game) drawOutline(screen *ebiten.Image, e arena.Entity) {
	pos := e.Body.Position()
	clr := roleColor(e.Spec.Role).RGBA()

	var points []arena.Vec
	switch e.Spec.Shape {
	case arena.SHAPE_CIRCLE:
		const segments = 16
		for i := 0; i < segments; i++ {
			a := 2 * math.Pi * float64(i) / segments
			points = append(points, arena.Vec{X: e.Spec.Radius * math.Cos(a), Y: e.Spec.Radius * math.Sin(a)})
		}
	default:
		hw, hh := e.Spec.Width/2, e.Spec.Height/2
		points = []arena.Vec{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
	}

	sin, cos := math.Sincos(e.Body.Angle())
	for i := range points {
		p := points[i]
		points[i] = pos.Add(arena.Vec{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos})
	}
	for i, p := range points {
		q := points[(i+1)%len(points)]
		ebitenutil.DrawLine(screen, p.X, p.Y, q.X, q.Y, clr)
	}
}
