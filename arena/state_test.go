package arena

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/mazeball/config"
)

func newTestGame(t *testing.T) (*Game, *fakeWorld, *fakePresenter, *Arena) {
	t.Helper()
	scene, err := NewScene(config.Default(), rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	world := &fakeWorld{}
	a := Build(world, scene)
	p := &fakePresenter{}
	g := NewGame(world, a, p, config.Default())
	require.Len(t, world.handlers, 1)
	return g, world, p, a
}

func TestGameStateName(t *testing.T) {
	assert.Equal(t, "PLAYING", PLAYING.Name())
	assert.Equal(t, "WON", WON.Name())
	assert.Equal(t, "N/A(9)", GameState(9).Name())
}

func TestIsWinningPair(t *testing.T) {
	assert.True(t, IsWinningPair(ROLE_BALL, ROLE_GOAL))
	assert.True(t, IsWinningPair(ROLE_GOAL, ROLE_BALL))
	assert.False(t, IsWinningPair(ROLE_BALL, ROLE_WALL))
	assert.False(t, IsWinningPair(ROLE_WALL, ROLE_BALL))
	assert.False(t, IsWinningPair(ROLE_BALL, ROLE_BOUNDARY))
	assert.False(t, IsWinningPair(ROLE_GOAL, ROLE_GOAL))
	assert.False(t, IsWinningPair(ROLE_BALL, ROLE_BALL))
}

func TestGameIgnoresOtherCollisions(t *testing.T) {
	g, world, p, a := newTestGame(t)

	world.collide(a.Ball, a.Walls[5])
	world.collide(a.Walls[4], a.Ball)
	world.collide(a.Ball, a.Walls[0])
	world.collide(a.Walls[4], a.Walls[5])
	world.collide(a.Walls[6], a.Goal)

	assert.Equal(t, PLAYING, g.State)
	assert.Equal(t, 0, p.shown)
	assert.Equal(t, 0, world.gravitySet)
	for _, w := range a.Walls {
		assert.True(t, w.Static())
	}
}

func TestGameWins(t *testing.T) {
	for name, order := range map[string]bool{"ball first": true, "goal first": false} {
		t.Run(name, func(t *testing.T) {
			g, world, p, a := newTestGame(t)

			if order {
				world.collide(a.Ball, a.Goal)
			} else {
				world.collide(a.Goal, a.Ball)
			}

			assert.Equal(t, WON, g.State)
			assert.Equal(t, 1, p.shown)
			assert.Equal(t, Vec{Y: config.Default().WinGravity}, world.gravity)
			for _, w := range a.Walls {
				if w.Role() == ROLE_WALL {
					assert.False(t, w.Static())
				} else {
					assert.True(t, w.Static(), "boundary stays put")
				}
			}
			assert.True(t, a.Goal.Static())
		})
	}
}

func TestGameWinIsIdempotent(t *testing.T) {
	g, world, p, a := newTestGame(t)

	world.collide(a.Ball, a.Goal)
	world.collide(a.Goal, a.Ball)
	world.collide(a.Ball, a.Goal)
	world.collide(a.Ball, a.Walls[4])

	assert.Equal(t, WON, g.State)
	assert.Equal(t, 1, p.shown)
	assert.Equal(t, 1, world.gravitySet)
	for _, w := range world.added {
		if w.Role() == ROLE_WALL {
			assert.Equal(t, 1, w.unfrozen)
		} else {
			assert.Equal(t, 0, w.unfrozen)
		}
	}
}

func TestGameWithoutPresenter(t *testing.T) {
	scene, err := NewScene(config.Default(), rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	world := &fakeWorld{}
	a := Build(world, scene)
	g := NewGame(world, a, nil, config.Default())

	assert.NotPanics(t, func() { world.collide(a.Ball, a.Goal) })
	assert.Equal(t, WON, g.State)
}

func TestGameOnKeyDown(t *testing.T) {
	g, _, _, a := newTestGame(t)
	acc := config.Default().Acceleration

	g.OnKeyDown(KEY_D)
	assert.Equal(t, Vec{X: acc}, a.Ball.Velocity())

	g.OnKeyDown(KEY_UP)
	assert.Equal(t, Vec{X: acc, Y: -acc}, a.Ball.Velocity())

	g.OnKeyDown(Key(999))
	g.OnKeyDown(KEY_R)
	assert.Equal(t, Vec{X: acc, Y: -acc}, a.Ball.Velocity())

	g.Push(LEFT)
	assert.Equal(t, Vec{X: 0, Y: -acc}, a.Ball.Velocity())
}
