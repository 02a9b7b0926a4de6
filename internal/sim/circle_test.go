package sim

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/iburimskiy/circle-collisions/internal/config"
)

var red = color.RGBA{R: 200, G: 10, B: 10, A: 255}

func TestNewCircleInitialVelocity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		speed := 1 + float64(i%5)
		c := NewCircle(Vec2{100, 100}, 25, red, "C1", speed, rng, Range{-1, 1})
		if c.Vel.Y > 0 || c.Vel.Y < -speed {
			t.Fatalf("dy out of range: got=%f speed=%f", c.Vel.Y, speed)
		}
		if math.Abs(c.Vel.X) > speed {
			t.Fatalf("dx out of range: got=%f speed=%f", c.Vel.X, speed)
		}
		if c.Radius <= 0 {
			t.Fatalf("radius must stay positive, got=%f", c.Radius)
		}
		if c.Colliding {
			t.Fatalf("new circle must not start colliding")
		}
	}
}

func TestNewCircleRejectsNonPositiveRadius(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for zero radius")
		}
	}()
	NewCircle(Vec2{}, 0, red, "C1", 1, rand.New(rand.NewSource(1)), Range{-1, 1})
}

func TestTickBouncesOffLeftEdge(t *testing.T) {
	c := &Circle{Pos: Vec2{0, 400}, Vel: Vec2{-3, -1}, Radius: 20, Color: red}
	c.Tick(Viewport{800, 800})

	if c.Vel.X != 3 {
		t.Fatalf("dx not inverted: got=%f want=3", c.Vel.X)
	}

	var f Frame
	c.Draw(&f)
	if got := f.Ops[0].Color; got != red {
		t.Fatalf("bounce changed stroke colour: got=%v want=%v", got, red)
	}
}

func TestTickBouncesOffRightEdge(t *testing.T) {
	c := &Circle{Pos: Vec2{798, 400}, Vel: Vec2{4, 0}, Radius: 20}
	c.Tick(Viewport{800, 800})
	if c.Vel.X != -4 {
		t.Fatalf("dx not inverted: got=%f want=-4", c.Vel.X)
	}
}

func TestTickWrapsAboveTop(t *testing.T) {
	c := &Circle{Pos: Vec2{300, -25}, Vel: Vec2{0, -2}, Radius: 20}
	c.Tick(Viewport{800, 800})

	if c.Pos.Y != 820 {
		t.Fatalf("wrap y: got=%f want=820", c.Pos.Y)
	}
	if c.Pos.X != 300 {
		t.Fatalf("wrap moved x: got=%f want=300", c.Pos.X)
	}
	if c.Vel != (Vec2{0, -2}) {
		t.Fatalf("wrap changed velocity: got=%+v", c.Vel)
	}
}

func TestTickInsideViewportOnlyMoves(t *testing.T) {
	c := &Circle{Pos: Vec2{400, 400}, Vel: Vec2{1.5, -2}, Radius: 30}
	c.Tick(Viewport{800, 800})
	if c.Pos != (Vec2{401.5, 398}) || c.Vel != (Vec2{1.5, -2}) {
		t.Fatalf("unexpected state after tick: pos=%+v vel=%+v", c.Pos, c.Vel)
	}
}

func TestContainsPointIsStrict(t *testing.T) {
	c := &Circle{Pos: Vec2{100, 100}, Radius: 10}

	if !c.ContainsPoint(100, 100) {
		t.Fatalf("centre must be inside")
	}
	if !c.ContainsPoint(109.9, 100) {
		t.Fatalf("point just inside must be inside")
	}
	if c.ContainsPoint(110, 100) {
		t.Fatalf("point on the edge must be outside")
	}
	if c.ContainsPoint(120, 120) {
		t.Fatalf("far point must be outside")
	}
}

func TestDrawUsesHighlightWhenColliding(t *testing.T) {
	c := &Circle{Pos: Vec2{50, 60}, Radius: 20, Color: red, Label: "C4"}

	var f Frame
	c.Draw(&f)
	if len(f.Ops) != 2 {
		t.Fatalf("expected stroke and text ops, got %d", len(f.Ops))
	}
	if f.Ops[0].Kind != OpStrokeCircle || f.Ops[0].Color != red {
		t.Fatalf("idle stroke: got=%+v", f.Ops[0])
	}

	c.Colliding = true
	f.Reset()
	c.Draw(&f)
	if f.Ops[0].Color != config.HighlightColor {
		t.Fatalf("colliding stroke: got=%v want=%v", f.Ops[0].Color, config.HighlightColor)
	}

	text := f.Ops[1]
	if text.Kind != OpFillText || text.Text != "C4" || text.X != 50 || text.Y != 60 {
		t.Fatalf("label op: got=%+v", text)
	}
	if text.Style.Color != config.LabelColor || text.Style.Align != AlignCenter || text.Style.Baseline != BaselineMiddle {
		t.Fatalf("label style: got=%+v", text.Style)
	}
}
