package physics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/mazeball/arena"
	"github.com/zucenko/mazeball/config"
)

const tick = 1.0 / 60

type collision struct {
	a, b arena.Role
}

func TestBodySpecRoundTrip(t *testing.T) {
	w := NewWorld()
	ball := w.NewBody(arena.BodySpec{Role: arena.ROLE_BALL, Shape: arena.SHAPE_CIRCLE, X: 10, Y: 20, Radius: 5})
	wall := w.NewBody(arena.BodySpec{Role: arena.ROLE_WALL, Shape: arena.SHAPE_RECT, X: 50, Y: 60, Width: 10, Height: 40, Static: true})
	w.Add(ball, wall)

	assert.Equal(t, arena.ROLE_BALL, ball.Role())
	assert.Equal(t, arena.Vec{X: 10, Y: 20}, ball.Position())
	assert.False(t, ball.Static())
	assert.True(t, wall.Static())

	ball.SetVelocity(arena.Vec{X: 3, Y: -4})
	assert.Equal(t, arena.Vec{X: 3, Y: -4}, ball.Velocity())
}

func TestBallHitsGoal(t *testing.T) {
	w := NewWorld()
	var seen []collision
	w.OnCollisionStart(func(a, b arena.Body) {
		seen = append(seen, collision{a.Role(), b.Role()})
		// mutating bodies here must be safe, the step is over
		a.SetStatic(a.Static())
	})

	goal := w.NewBody(arena.BodySpec{Role: arena.ROLE_GOAL, Shape: arena.SHAPE_RECT, X: 100, Y: 0, Width: 20, Height: 20, Static: true})
	ball := w.NewBody(arena.BodySpec{Role: arena.ROLE_BALL, Shape: arena.SHAPE_CIRCLE, X: 0, Y: 0, Radius: 10})
	w.Add(goal, ball)
	ball.SetVelocity(arena.Vec{X: 300})

	for i := 0; i < 60 && len(seen) == 0; i++ {
		w.Step(tick)
	}

	require.NotEmpty(t, seen)
	assert.True(t, arena.IsWinningPair(seen[0].a, seen[0].b))
}

func TestNoGravityUntilSet(t *testing.T) {
	w := NewWorld()
	ball := w.NewBody(arena.BodySpec{Role: arena.ROLE_BALL, Shape: arena.SHAPE_CIRCLE, X: 0, Y: 0, Radius: 10})
	w.Add(ball)

	for i := 0; i < 30; i++ {
		w.Step(tick)
	}
	assert.Equal(t, arena.Vec{}, ball.Position())
	assert.Equal(t, arena.Vec{}, w.Gravity())
}

func TestReleasedWallFalls(t *testing.T) {
	w := NewWorld()
	kept := w.NewBody(arena.BodySpec{Role: arena.ROLE_BOUNDARY, Shape: arena.SHAPE_RECT, X: 0, Y: 500, Width: 400, Height: 10, Static: true})
	wall := w.NewBody(arena.BodySpec{Role: arena.ROLE_WALL, Shape: arena.SHAPE_RECT, X: 0, Y: 100, Width: 60, Height: 10, Static: true})
	w.Add(kept, wall)
	w.SetGravity(arena.Vec{Y: 400})

	w.Step(tick)
	assert.Equal(t, 100.0, wall.Position().Y, "static wall ignores gravity")

	wall.SetStatic(false)
	assert.False(t, wall.Static())
	for i := 0; i < 20; i++ {
		w.Step(tick)
	}

	assert.Greater(t, wall.Position().Y, 100.0)
	assert.Equal(t, 500.0, kept.Position().Y)
	assert.True(t, kept.Static())
}

func TestAddIgnoresForeignBodies(t *testing.T) {
	w := NewWorld()
	assert.NotPanics(t, func() { w.Add(foreign{}) })
	assert.Empty(t, w.bodies)
}

type foreign struct{ arena.Body }

func TestArenaPlaysToWin(t *testing.T) {
	cfg := config.Default()
	cfg.Rows, cfg.Cols = 1, 2
	cfg.Width, cfg.Height = 200, 100

	scene, err := arena.NewScene(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, scene.Walls, 4, "a 1x2 maze has no interior walls")

	w := NewWorld()
	a := arena.Build(w, scene)
	g := arena.NewGame(w, a, nil, cfg)

	g.OnKeyDown(arena.KEY_D)
	for i := 0; i < 180 && g.State == arena.PLAYING; i++ {
		w.Step(tick)
	}

	assert.Equal(t, arena.WON, g.State)
	assert.Equal(t, arena.Vec{Y: cfg.WinGravity}, w.Gravity())
	for _, wall := range a.Walls {
		assert.True(t, wall.Static(), "boundary walls stay static")
	}
}
