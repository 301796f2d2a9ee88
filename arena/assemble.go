package arena

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazeball/config"
	"github.com/zucenko/mazeball/maze"
	"github.com/zucenko/mazeball/model"
)

const (
	ballRadiusDivisor = 3
	goalRatio         = 0.6
)

// Scene is the full initial layout of an arena, independent of any physics
// world.
type Scene struct {
	Width, Height float64
	Geometry      maze.Geometry
	Grid          *model.Grid
	Start, Goal   model.Cell

	Walls    []BodySpec
	GoalBody BodySpec
	Ball     BodySpec
}

// NewScene validates cfg, generates a fresh maze from rng and assembles it.
func NewScene(cfg config.Config, rng *rand.Rand) (Scene, error) {
	cfg = cfg.Resolved()
	if err := cfg.Validate(); err != nil {
		return Scene{}, err
	}
	grid, err := maze.New(cfg.Rows, cfg.Cols, rng)
	if err != nil {
		return Scene{}, err
	}
	return Assemble(cfg, grid)
}

// Assemble places the walls of grid, the goal and the ball. The ball starts in
// the top-left cell and the goal sits in the bottom-right one.
func Assemble(cfg config.Config, grid *model.Grid) (Scene, error) {
	cfg = cfg.Resolved()
	if err := cfg.Validate(); err != nil {
		return Scene{}, err
	}
	if grid == nil || grid.Rows != cfg.Rows || grid.Cols != cfg.Cols {
		return Scene{}, fmt.Errorf("%w: grid does not match %dx%d", model.ErrInvalidDimensions, cfg.Rows, cfg.Cols)
	}

	geo := maze.Geometry{
		CellWidth:     cfg.Width / float64(cfg.Cols),
		CellHeight:    cfg.Height / float64(cfg.Rows),
		WallThickness: cfg.WallThickness,
		Border:        cfg.Border,
	}
	scene := Scene{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Geometry: geo,
		Grid:     grid,
		Start:    model.Cell{Row: 0, Col: 0},
		Goal:     model.Cell{Row: grid.Rows - 1, Col: grid.Cols - 1},
	}

	for _, w := range maze.Layout(grid, geo) {
		role := ROLE_WALL
		if w.Boundary {
			role = ROLE_BOUNDARY
		}
		scene.Walls = append(scene.Walls, BodySpec{
			Role:   role,
			Shape:  SHAPE_RECT,
			X:      w.CenterX,
			Y:      w.CenterY,
			Width:  w.Width,
			Height: w.Height,
			Static: true,
		})
	}

	gx, gy := geo.CellCenter(scene.Goal)
	scene.GoalBody = BodySpec{
		Role:   ROLE_GOAL,
		Shape:  SHAPE_RECT,
		X:      gx,
		Y:      gy,
		Width:  geo.CellWidth * goalRatio,
		Height: geo.CellHeight * goalRatio,
		Static: true,
	}

	bx, by := geo.CellCenter(scene.Start)
	scene.Ball = BodySpec{
		Role:   ROLE_BALL,
		Shape:  SHAPE_CIRCLE,
		X:      bx,
		Y:      by,
		Radius: math.Min(geo.CellWidth, geo.CellHeight) / ballRadiusDivisor,
	}

	return scene, nil
}

// Bodies lists every body spec in creation order: walls, goal, ball.
func (s Scene) Bodies() []BodySpec {
	bodies := make([]BodySpec, 0, len(s.Walls)+2)
	bodies = append(bodies, s.Walls...)
	return append(bodies, s.GoalBody, s.Ball)
}

// Entity pairs a live body with the BodySpec it was built from.
type Entity struct {
	Spec BodySpec
	Body Body
}

// Arena is a scene instantiated in a physics world.
type Arena struct {
	ID       string
	Scene    Scene
	Entities []Entity
	Walls    []Body
	Goal     Body
	Ball     Body
}

// Build creates the scene bodies in world. All walls are added before the goal
// and ball so a half-built maze is never stepped.
func Build(world World, scene Scene) *Arena {
	a := &Arena{
		ID:    uuid.New().String(),
		Scene: scene,
	}

	walls := make([]Body, 0, len(scene.Walls))
	for _, spec := range scene.Walls {
		body := world.NewBody(spec)
		walls = append(walls, body)
		a.Entities = append(a.Entities, Entity{Spec: spec, Body: body})
	}
	world.Add(walls...)
	a.Walls = walls

	a.Goal = world.NewBody(scene.GoalBody)
	a.Ball = world.NewBody(scene.Ball)
	a.Entities = append(a.Entities,
		Entity{Spec: scene.GoalBody, Body: a.Goal},
		Entity{Spec: scene.Ball, Body: a.Ball})
	world.Add(a.Goal, a.Ball)

	log.WithFields(log.Fields{
		"arena": a.ID,
		"rows":  scene.Grid.Rows,
		"cols":  scene.Grid.Cols,
		"walls": len(walls),
	}).Info("arena assembled")
	return a
}
