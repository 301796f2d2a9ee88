package arena

import "fmt"

type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Role replaces string labels on bodies.
type Role int

const (
	ROLE_WALL Role = iota + 1
	ROLE_BOUNDARY
	ROLE_BALL
	ROLE_GOAL
)

func (r Role) Name() string {
	switch r {
	case ROLE_WALL:
		return "wall"
	case ROLE_BOUNDARY:
		return "boundary"
	case ROLE_BALL:
		return "ball"
	case ROLE_GOAL:
		return "goal"
	default:
		return fmt.Sprintf("N/A(%d)", r)
	}
}

type Shape int

const (
	SHAPE_RECT Shape = iota + 1
	SHAPE_CIRCLE
)

// BodySpec describes a body before the physics world creates it. Position is
// the body center. Rectangles use Width and Height, circles use Radius.
type BodySpec struct {
	Role          Role
	Shape         Shape
	X, Y          float64
	Width, Height float64
	Radius        float64
	Static        bool
}

// Body is a rigid body handle owned by the physics world.
type Body interface {
	Role() Role
	Position() Vec
	Angle() float64
	Velocity() Vec
	SetVelocity(v Vec)
	Static() bool
	SetStatic(static bool)
}

// World is the physics collaborator. Collision handlers run on the caller's
// goroutine between simulation steps, never concurrently.
type World interface {
	NewBody(spec BodySpec) Body
	Add(bodies ...Body)
	SetGravity(g Vec)
	OnCollisionStart(handler func(a, b Body))
}
