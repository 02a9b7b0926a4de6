package sim

import (
	"math/rand"
	"testing"
)

func TestOverlapsIsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		a := &Circle{Pos: Vec2{rng.Float64() * 200, rng.Float64() * 200}, Radius: 5 + rng.Float64()*40}
		b := &Circle{Pos: Vec2{rng.Float64() * 200, rng.Float64() * 200}, Radius: 5 + rng.Float64()*40}
		if Overlaps(a, b) != Overlaps(b, a) {
			t.Fatalf("asymmetric overlap for a=%+v b=%+v", a, b)
		}
	}
}

func TestOverlapsTouchingIsNotColliding(t *testing.T) {
	a := &Circle{Pos: Vec2{0, 0}, Radius: 10}
	b := &Circle{Pos: Vec2{30, 0}, Radius: 20}
	if Overlaps(a, b) {
		t.Fatalf("touching circles must not overlap")
	}
	b.Pos.X = 29.9
	if !Overlaps(a, b) {
		t.Fatalf("intersecting circles must overlap")
	}
}

func TestSweepMarksOverlappingPairs(t *testing.T) {
	a := &Circle{Pos: Vec2{100, 100}, Vel: Vec2{1, -1}, Radius: 20}
	b := &Circle{Pos: Vec2{130, 100}, Vel: Vec2{-2, -3}, Radius: 20}
	c := &Circle{Pos: Vec2{500, 500}, Vel: Vec2{1, -4}, Radius: 20, Colliding: true}

	Sweep([]*Circle{a, b, c}, ResolvePairwise)

	if !a.Colliding || !b.Colliding {
		t.Fatalf("overlapping pair not marked: a=%v b=%v", a.Colliding, b.Colliding)
	}
	if c.Colliding {
		t.Fatalf("stale colliding flag survived the sweep")
	}
	if a.Vel != (Vec2{-1, 1}) || b.Vel != (Vec2{2, 3}) {
		t.Fatalf("velocities not inverted: a=%+v b=%+v", a.Vel, b.Vel)
	}
	if c.Vel != (Vec2{1, -4}) {
		t.Fatalf("free circle velocity changed: %+v", c.Vel)
	}
}

func TestSweepFlagStaysSetForLaterIndex(t *testing.T) {
	// c overlaps a (i=0) but not b (i=1); its flag must survive the
	// remaining pairs.
	a := &Circle{Pos: Vec2{0, 0}, Radius: 10}
	b := &Circle{Pos: Vec2{500, 0}, Radius: 10}
	c := &Circle{Pos: Vec2{5, 0}, Radius: 10}

	Sweep([]*Circle{a, b, c}, ResolvePairwise)

	if !a.Colliding || b.Colliding || !c.Colliding {
		t.Fatalf("flags: a=%v b=%v c=%v", a.Colliding, b.Colliding, c.Colliding)
	}
}

func TestSweepPairwiseCompounds(t *testing.T) {
	hub := &Circle{Pos: Vec2{100, 100}, Vel: Vec2{2, -1}, Radius: 20}
	left := &Circle{Pos: Vec2{75, 100}, Vel: Vec2{1, -1}, Radius: 20}
	right := &Circle{Pos: Vec2{125, 100}, Vel: Vec2{-1, -1}, Radius: 20}

	Sweep([]*Circle{hub, left, right}, ResolvePairwise)

	// hub is in two pairs and is flipped twice.
	if hub.Vel != (Vec2{2, -1}) {
		t.Fatalf("hub velocity: got=%+v want={2 -1}", hub.Vel)
	}
	if left.Vel != (Vec2{-1, 1}) || right.Vel != (Vec2{1, 1}) {
		t.Fatalf("neighbour velocities: left=%+v right=%+v", left.Vel, right.Vel)
	}
}

func TestSweepOnceInvertsEachCircleOnce(t *testing.T) {
	hub := &Circle{Pos: Vec2{100, 100}, Vel: Vec2{2, -1}, Radius: 20}
	left := &Circle{Pos: Vec2{75, 100}, Vel: Vec2{1, -1}, Radius: 20}
	right := &Circle{Pos: Vec2{125, 100}, Vel: Vec2{-1, -1}, Radius: 20}

	Sweep([]*Circle{hub, left, right}, ResolveOnce)

	if hub.Vel != (Vec2{-2, 1}) {
		t.Fatalf("hub velocity: got=%+v want={-2 1}", hub.Vel)
	}
	if left.Vel != (Vec2{-1, 1}) || right.Vel != (Vec2{1, 1}) {
		t.Fatalf("neighbour velocities: left=%+v right=%+v", left.Vel, right.Vel)
	}
}

func TestSweepEmptyAndSingle(t *testing.T) {
	Sweep(nil, ResolvePairwise)

	solo := &Circle{Pos: Vec2{10, 10}, Vel: Vec2{1, 1}, Radius: 5, Colliding: true}
	Sweep([]*Circle{solo}, ResolvePairwise)
	if solo.Colliding || solo.Vel != (Vec2{1, 1}) {
		t.Fatalf("single circle: %+v", solo)
	}
}

func TestParseResolveMode(t *testing.T) {
	for in, want := range map[string]ResolveMode{"": ResolvePairwise, "pairwise": ResolvePairwise, "once": ResolveOnce} {
		got, err := ParseResolveMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseResolveMode(%q): got=%v err=%v want=%v", in, got, err, want)
		}
	}
	if _, err := ParseResolveMode("elastic"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
