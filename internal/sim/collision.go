package sim

import "fmt"

// ResolveMode selects how a sweep inverts velocities of colliding circles.
type ResolveMode uint8

const (
	// ResolvePairwise inverts both circles once per overlapping pair, so a
	// circle caught in several pairs flips several times in one sweep.
	ResolvePairwise ResolveMode = iota
	// ResolveOnce inverts every colliding circle exactly once per sweep.
	ResolveOnce
)

func (m ResolveMode) String() string {
	switch m {
	case ResolvePairwise:
		return "pairwise"
	case ResolveOnce:
		return "once"
	default:
		return fmt.Sprintf("ResolveMode(%d)", m)
	}
}

// ParseResolveMode maps a config string to a ResolveMode.
func ParseResolveMode(s string) (ResolveMode, error) {
	switch s {
	case "", "pairwise":
		return ResolvePairwise, nil
	case "once":
		return ResolveOnce, nil
	}
	return 0, fmt.Errorf("unknown resolve mode %q", s)
}

// Overlaps reports whether two circles intersect. Touching does not count.
func Overlaps(a, b *Circle) bool {
	return a.Pos.Sub(b.Pos).Len() < a.Radius+b.Radius
}

// Sweep marks every overlapping pair as colliding and reverses their
// velocities. Flags are reset once for the whole population first.
func Sweep(pop []*Circle, mode ResolveMode) {
	for _, c := range pop {
		c.Colliding = false
	}

	for i := 0; i < len(pop); i++ {
		for j := i + 1; j < len(pop); j++ {
			a, b := pop[i], pop[j]
			if !Overlaps(a, b) {
				continue
			}
			a.Colliding = true
			b.Colliding = true
			if mode == ResolvePairwise {
				a.Vel = a.Vel.Neg()
				b.Vel = b.Vel.Neg()
			}
		}
	}

	if mode == ResolveOnce {
		for _, c := range pop {
			if c.Colliding {
				c.Vel = c.Vel.Neg()
			}
		}
	}
}
