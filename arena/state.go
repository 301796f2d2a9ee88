package arena

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazeball/config"
)

type GameState int

const (
	PLAYING GameState = iota + 1
	WON
)

func (s GameState) Name() string {
	switch s {
	case PLAYING:
		return "PLAYING"
	case WON:
		return "WON"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Presenter reveals the win message.
type Presenter interface {
	ShowWin()
}

// Game reacts to collisions and key presses for one arena. It moves from
// PLAYING to WON once, when the ball touches the goal, and never back.
type Game struct {
	State GameState

	arena     *Arena
	world     World
	presenter Presenter
	input     InputConfig
	gravity   float64
	log       *log.Entry
}

// NewGame subscribes the game to world collisions.
func NewGame(world World, a *Arena, presenter Presenter, cfg config.Config) *Game {
	g := &Game{
		State:     PLAYING,
		arena:     a,
		world:     world,
		presenter: presenter,
		input:     InputConfig{Acceleration: cfg.Acceleration, MaxSpeed: cfg.MaxSpeed},
		gravity:   cfg.WinGravity,
		log:       log.WithField("arena", a.ID),
	}
	world.OnCollisionStart(g.OnCollision)
	return g
}

// IsWinningPair reports whether a and b are the ball and the goal, in either
// order.
func IsWinningPair(a, b Role) bool {
	return a == ROLE_BALL && b == ROLE_GOAL || a == ROLE_GOAL && b == ROLE_BALL
}

func (g *Game) OnCollision(a, b Body) {
	if g.State == WON {
		return
	}
	if !IsWinningPair(a.Role(), b.Role()) {
		g.log.Debugf("collision %s-%s", a.Role().Name(), b.Role().Name())
		return
	}
	g.win()
}

func (g *Game) win() {
	g.State = WON
	g.log.Info("goal reached")

	if g.presenter != nil {
		g.presenter.ShowWin()
	}
	g.world.SetGravity(Vec{Y: g.gravity})
	for _, wall := range g.arena.Walls {
		if wall.Role() == ROLE_WALL {
			wall.SetStatic(false)
		}
	}
}

// OnKeyDown steers the ball. Unmapped keys are ignored.
func (g *Game) OnKeyDown(key Key) {
	if d, ok := KeyDirection(key); ok {
		g.Push(d)
	}
}

// Push accelerates the ball one step in d.
func (g *Game) Push(d Direction) {
	ball := g.arena.Ball
	ball.SetVelocity(Accelerate(ball.Velocity(), d, g.input))
}
