/*
Package physics runs the arena bodies on the Chipmunk2D port
github.com/jakecoffman/cp.

Collisions reported by cp during a step are queued and delivered after the
step returns, so handlers are free to change body types and gravity, which
cp forbids while the space is locked.
*/
package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazeball/arena"
)

const (
	bodyCollision cp.CollisionType = 1

	density    = 0.01
	elasticity = 0.6
	friction   = 0.1
	substeps   = 4
)

type pair struct {
	a, b *Body
}

// World implements arena.World.
type World struct {
	space    *cp.Space
	handlers []func(a, b arena.Body)
	pending  []pair
	bodies   []*Body
}

func NewWorld() *World {
	w := &World{space: cp.NewSpace()}
	w.space.SetGravity(cp.Vector{})

	h := w.space.NewCollisionHandler(bodyCollision, bodyCollision)
	h.BeginFunc = w.begin
	return w
}

func (w *World) begin(arb *cp.Arbiter, space *cp.Space, data interface{}) bool {
	sa, sb := arb.Shapes()
	a, aok := sa.UserData.(*Body)
	b, bok := sb.UserData.(*Body)
	if aok && bok {
		w.pending = append(w.pending, pair{a: a, b: b})
	}
	return true
}

// NewBody creates a body and its shape without adding them to the space.
func (w *World) NewBody(spec arena.BodySpec) arena.Body {
	var mass, moment float64
	switch spec.Shape {
	case arena.SHAPE_CIRCLE:
		mass = density * math.Pi * spec.Radius * spec.Radius
		moment = cp.MomentForCircle(mass, 0, spec.Radius, cp.Vector{})
	default:
		mass = density * spec.Width * spec.Height
		moment = cp.MomentForBox(mass, spec.Width, spec.Height)
	}

	var body *cp.Body
	if spec.Static {
		body = cp.NewStaticBody()
	} else {
		body = cp.NewBody(mass, moment)
	}
	body.SetPosition(cp.Vector{X: spec.X, Y: spec.Y})

	var shape *cp.Shape
	switch spec.Shape {
	case arena.SHAPE_CIRCLE:
		shape = cp.NewCircle(body, spec.Radius, cp.Vector{})
	default:
		shape = cp.NewBox(body, spec.Width, spec.Height, 0)
	}
	shape.SetElasticity(elasticity)
	shape.SetFriction(friction)
	shape.SetCollisionType(bodyCollision)
	if spec.Static {
		// static bodies take their mass from the shape once released
		shape.SetMass(mass)
	}

	b := &Body{role: spec.Role, body: body, shape: shape}
	shape.UserData = b
	body.UserData = b
	return b
}

func (w *World) Add(bodies ...arena.Body) {
	for _, ab := range bodies {
		b, ok := ab.(*Body)
		if !ok {
			log.Warnf("physics: ignoring foreign body %T", ab)
			continue
		}
		w.space.AddBody(b.body)
		w.space.AddShape(b.shape)
		w.bodies = append(w.bodies, b)
	}
}

func (w *World) SetGravity(g arena.Vec) {
	w.space.SetGravity(cp.Vector{X: g.X, Y: g.Y})
}

func (w *World) Gravity() arena.Vec {
	g := w.space.Gravity()
	return arena.Vec{X: g.X, Y: g.Y}
}

func (w *World) OnCollisionStart(handler func(a, b arena.Body)) {
	w.handlers = append(w.handlers, handler)
}

// Step advances the simulation by dt seconds and then delivers the collisions
// that started during it.
func (w *World) Step(dt float64) {
	for i := 0; i < substeps; i++ {
		w.space.Step(dt / substeps)
	}

	pending := w.pending
	w.pending = nil
	for _, p := range pending {
		for _, h := range w.handlers {
			h(p.a, p.b)
		}
	}
}

// Body implements arena.Body on a cp body with a single shape.
type Body struct {
	role  arena.Role
	body  *cp.Body
	shape *cp.Shape
}

func (b *Body) Role() arena.Role {
	return b.role
}

func (b *Body) Position() arena.Vec {
	p := b.body.Position()
	return arena.Vec{X: p.X, Y: p.Y}
}

func (b *Body) Angle() float64 {
	return b.body.Angle()
}

func (b *Body) Velocity() arena.Vec {
	v := b.body.Velocity()
	return arena.Vec{X: v.X, Y: v.Y}
}

func (b *Body) SetVelocity(v arena.Vec) {
	b.body.SetVelocityVector(cp.Vector{X: v.X, Y: v.Y})
}

func (b *Body) Static() bool {
	return b.body.GetType() == cp.BODY_STATIC
}

func (b *Body) SetStatic(static bool) {
	if static {
		b.body.SetType(cp.BODY_STATIC)
		return
	}
	b.body.SetType(cp.BODY_DYNAMIC)
	b.body.Activate()
}
