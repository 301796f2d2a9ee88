package main

import (
	"math/rand"

	"github.com/zucenko/mazeball/arena"
	"github.com/zucenko/mazeball/config"
	"github.com/zucenko/mazeball/physics"
)

// session is one maze from assembly to win. A restart throws it away.
type session struct {
	World *physics.World
	Arena *arena.Arena
	Game  *arena.Game
}

func newSession(cfg config.Config, rng *rand.Rand, presenter arena.Presenter) (*session, error) {
	scene, err := arena.NewScene(cfg, rng)
	if err != nil {
		return nil, err
	}
	world := physics.NewWorld()
	a := arena.Build(world, scene)
	return &session{
		World: world,
		Arena: a,
		Game:  arena.NewGame(world, a, presenter, cfg),
	}, nil
}
