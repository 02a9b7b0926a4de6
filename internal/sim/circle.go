package sim

import (
	"image/color"
	"math/rand"

	"github.com/iburimskiy/circle-collisions/internal/config"
)

// Circle is a single simulated entity.
type Circle struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
	Color  color.RGBA
	Label  string

	// Colliding is only meaningful for the most recent sweep.
	Colliding bool
}

// NewCircle builds a circle moving upward. The horizontal component is
// speed scaled by a uniform sample of vx; the vertical one is -speed*[0,1).
func NewCircle(pos Vec2, radius float64, c color.RGBA, label string, speed float64, rng *rand.Rand, vx Range) *Circle {
	if radius <= 0 {
		panic("sim: circle radius must be positive")
	}
	return &Circle{
		Pos:    pos,
		Radius: radius,
		Color:  c,
		Label:  label,
		Vel: Vec2{
			X: speed * vx.sample(rng),
			Y: -speed * rng.Float64(),
		},
	}
}

// Tick advances the circle by one frame. Side edges bounce, the top edge
// wraps the circle to just below the bottom one.
func (c *Circle) Tick(vp Viewport) {
	c.Pos = c.Pos.Add(c.Vel)

	if c.Pos.X+c.Radius > vp.Width || c.Pos.X-c.Radius < 0 {
		c.Vel.X = -c.Vel.X
	}

	if c.Pos.Y+c.Radius < 0 {
		c.Pos.Y = vp.Height + c.Radius
	}
}

func (c *Circle) Draw(s Surface) {
	stroke := c.Color
	if c.Colliding {
		stroke = config.HighlightColor
	}
	s.StrokeCircle(c.Pos.X, c.Pos.Y, c.Radius, config.StrokeWidth, stroke)
	s.FillText(c.Label, c.Pos.X, c.Pos.Y, TextStyle{
		Color:    config.LabelColor,
		Align:    AlignCenter,
		Baseline: BaselineMiddle,
		Size:     config.LabelSize,
	})
}

// ContainsPoint reports whether (x, y) lies strictly inside the circle.
func (c *Circle) ContainsPoint(x, y float64) bool {
	return Vec2{x, y}.Sub(c.Pos).Len() < c.Radius
}
