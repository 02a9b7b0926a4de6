package sim

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"

	"github.com/iburimskiy/circle-collisions/internal/config"
)

// ErrSpawnDensityExceeded is returned when a non-overlapping placement could
// not be found within the attempt budget.
var ErrSpawnDensityExceeded = errors.New("spawn density exceeded")

// SpawnDensityError reports the slot that could not be placed.
type SpawnDensityError struct {
	Slot     int
	Attempts int
	Placed   int
}

func (e *SpawnDensityError) Error() string {
	return fmt.Sprintf("spawn density exceeded: slot %d unplaced after %d attempts (%d placed)",
		e.Slot, e.Attempts, e.Placed)
}

func (e *SpawnDensityError) Unwrap() error { return ErrSpawnDensityExceeded }

// SpawnOptions tunes random circle generation.
type SpawnOptions struct {
	Radius      Range
	Speed       Range
	VelocityX   Range
	BandDepth   float64
	MaxAttempts int
}

func DefaultSpawnOptions() SpawnOptions {
	return SpawnOptions{
		Radius:      Range{config.RadiusMin, config.RadiusMax},
		Speed:       Range{config.SpeedMin, config.SpeedMax},
		VelocityX:   Range{config.VelocityXMin, config.VelocityXMax},
		BandDepth:   config.SpawnBandDepth,
		MaxAttempts: config.MaxSpawnAttempts,
	}
}

// Spawner generates circles in the band just below the viewport.
type Spawner struct {
	vp   Viewport
	rng  *rand.Rand
	opts SpawnOptions

	retries int
}

func NewSpawner(vp Viewport, rng *rand.Rand, opts SpawnOptions) *Spawner {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = config.MaxSpawnAttempts
	}
	return &Spawner{vp: vp, rng: rng, opts: opts}
}

// SpawnOne creates a circle for the given zero-based slot index.
func (s *Spawner) SpawnOne(index int) *Circle {
	r := s.opts.Radius.sample(s.rng)

	var x float64
	if s.vp.Width >= 2*r {
		x = Range{r, s.vp.Width - r}.sample(s.rng)
	} else {
		x = s.vp.Width / 2
	}
	y := s.vp.Height + r + s.rng.Float64()*s.opts.BandDepth

	rgb := s.rng.Intn(0x1000000)
	c := color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 255}

	speed := s.opts.Speed.sample(s.rng)

	return NewCircle(Vec2{x, y}, r, c, fmt.Sprintf("C%d", index+1), speed, s.rng, s.opts.VelocityX)
}

// SpawnN appends n circles to pop, none of which overlap each other or any
// circle already in pop. Each slot is retried until it fits or the attempt
// budget runs out; in that case the circles placed so far are returned along
// with a *SpawnDensityError.
func (s *Spawner) SpawnN(pop []*Circle, n int) ([]*Circle, error) {
	base := len(pop)
	for i := 0; i < n; i++ {
		placed := false
		for attempt := 1; attempt <= s.opts.MaxAttempts; attempt++ {
			c := s.SpawnOne(base + i)
			if overlapsAny(c, pop) {
				s.retries++
				continue
			}
			pop = append(pop, c)
			placed = true
			break
		}
		if !placed {
			return pop, &SpawnDensityError{Slot: base + i, Attempts: s.opts.MaxAttempts, Placed: i}
		}
	}
	return pop, nil
}

func overlapsAny(c *Circle, pop []*Circle) bool {
	for _, other := range pop {
		if Overlaps(c, other) {
			return true
		}
	}
	return false
}

// Retries is the number of placements discarded for overlapping so far.
func (s *Spawner) Retries() int { return s.retries }
