package arena

import "math"

// Key is a numeric key code as delivered by the input device.
type Key int

const (
	KEY_ENTER Key = 13
	KEY_LEFT  Key = 37
	KEY_UP    Key = 38
	KEY_RIGHT Key = 39
	KEY_DOWN  Key = 40
	KEY_A     Key = 65
	KEY_D     Key = 68
	KEY_R     Key = 82
	KEY_S     Key = 83
	KEY_W     Key = 87
)

type Direction int

const (
	UP Direction = iota + 1
	DOWN
	LEFT
	RIGHT
)

var keyDirections = map[Key]Direction{
	KEY_W:     UP,
	KEY_UP:    UP,
	KEY_S:     DOWN,
	KEY_DOWN:  DOWN,
	KEY_A:     LEFT,
	KEY_LEFT:  LEFT,
	KEY_D:     RIGHT,
	KEY_RIGHT: RIGHT,
}

func KeyDirection(k Key) (Direction, bool) {
	d, ok := keyDirections[k]
	return d, ok
}

type InputConfig struct {
	Acceleration float64
	MaxSpeed     float64
}

// Steer returns v after the key press k. Unmapped keys leave v unchanged.
func Steer(v Vec, k Key, cfg InputConfig) Vec {
	d, ok := KeyDirection(k)
	if !ok {
		return v
	}
	return Accelerate(v, d, cfg)
}

// Accelerate adds one acceleration step along d. Screen y grows downwards.
func Accelerate(v Vec, d Direction, cfg InputConfig) Vec {
	switch d {
	case UP:
		v.Y = clampStep(v.Y, -cfg.Acceleration, cfg.MaxSpeed)
	case DOWN:
		v.Y = clampStep(v.Y, cfg.Acceleration, cfg.MaxSpeed)
	case LEFT:
		v.X = clampStep(v.X, -cfg.Acceleration, cfg.MaxSpeed)
	case RIGHT:
		v.X = clampStep(v.X, cfg.Acceleration, cfg.MaxSpeed)
	}
	return v
}

// clampStep adds delta to v without pushing it past +-max. A component that
// already exceeds max in the delta's direction is left alone.
func clampStep(v, delta, max float64) float64 {
	next := v + delta
	if delta > 0 {
		if next > max {
			next = max
		}
		if next < v {
			return v
		}
		return next
	}
	if next < -max {
		next = -max
	}
	if next > v {
		return v
	}
	return next
}

// SwipeDirection maps a drag of (dx, dy) pixels to its dominant axis. Drags
// not longer than threshold on either axis give no direction.
func SwipeDirection(dx, dy, threshold float64) (Direction, bool) {
	ax, ay := math.Abs(dx), math.Abs(dy)
	if ax <= threshold && ay <= threshold {
		return 0, false
	}
	if ax >= ay {
		if dx > 0 {
			return RIGHT, true
		}
		return LEFT, true
	}
	if dy > 0 {
		return DOWN, true
	}
	return UP, true
}
