package sim

import (
	"math"
	"math/rand"
)

// Vec2 is a 2D vector used for positions and velocities.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Viewport is the visible area, read once at startup.
type Viewport struct {
	Width, Height float64
}

// Range is a closed float interval.
type Range struct {
	Min, Max float64
}

// sample returns a uniform value in [Min, Max).
func (r Range) sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
