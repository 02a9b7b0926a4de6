package sim

import (
	"math/rand"
	"time"
)

// State of the frame loop.
type State uint8

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Options configures a Simulation. A nil Rand is replaced with a
// time-seeded source and a zero Spawn with DefaultSpawnOptions.
type Options struct {
	Rand    *rand.Rand
	Spawn   SpawnOptions
	Resolve ResolveMode
}

// Simulation owns the population and runs one frame per RunTick call. It is
// not safe for concurrent use; drivers call it from a single goroutine.
type Simulation struct {
	vp      Viewport
	state   State
	circles []*Circle
	spawner *Spawner
	resolve ResolveMode
	ticks   uint64
}

func New(vp Viewport, opts Options) *Simulation {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Spawn == (SpawnOptions{}) {
		opts.Spawn = DefaultSpawnOptions()
	}
	return &Simulation{
		vp:      vp,
		spawner: NewSpawner(vp, rng, opts.Spawn),
		resolve: opts.Resolve,
	}
}

// Populate spawns n non-overlapping circles. On ErrSpawnDensityExceeded the
// circles placed before the failure stay in the population.
func (s *Simulation) Populate(n int) error {
	var err error
	s.circles, err = s.spawner.SpawnN(s.circles, n)
	return err
}

// Add inserts an already built circle.
func (s *Simulation) Add(c *Circle) {
	s.circles = append(s.circles, c)
}

func (s *Simulation) Start() {
	if s.state == Idle {
		s.state = Running
	}
}

// Stop ends the loop. A frame already in progress completes normally.
func (s *Simulation) Stop() {
	if s.state == Running {
		s.state = Stopped
	}
}

// RunTick renders one frame onto surf: clear, collision sweep, then move and
// draw every circle. It reports whether the driver should schedule another
// frame, which is false unless the simulation is running.
func (s *Simulation) RunTick(surf Surface) bool {
	if s.state != Running {
		return false
	}

	surf.Clear(0, 0, s.vp.Width, s.vp.Height)
	Sweep(s.circles, s.resolve)
	for _, c := range s.circles {
		c.Tick(s.vp)
		c.Draw(surf)
	}
	s.ticks++

	return s.state == Running
}

// HandleClick removes every circle containing (x, y) and returns them.
// Survivors keep their relative order.
func (s *Simulation) HandleClick(x, y float64) []*Circle {
	var removed []*Circle
	kept := s.circles[:0]
	for _, c := range s.circles {
		if c.ContainsPoint(x, y) {
			removed = append(removed, c)
			continue
		}
		kept = append(kept, c)
	}
	// Clear the tail so removed circles can be collected.
	for i := len(kept); i < len(s.circles); i++ {
		s.circles[i] = nil
	}
	s.circles = kept
	return removed
}

func (s *Simulation) State() State { return s.state }
func (s *Simulation) Viewport() Viewport { return s.vp }
func (s *Simulation) Ticks() uint64 { return s.ticks }
func (s *Simulation) Len() int { return len(s.circles) }
func (s *Simulation) Spawner() *Spawner { return s.spawner }
func (s *Simulation) Resolve() ResolveMode { return s.resolve }

// Circles returns a copy of the population slice. The circles themselves
// are shared.
func (s *Simulation) Circles() []*Circle {
	out := make([]*Circle, len(s.circles))
	copy(out, s.circles)
	return out
}
