package term

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/circle-collisions/internal/sim"
)

// Popper is notified when circles are removed.
type Popper interface {
	Pop()
}

// Driver runs a Simulation on a terminal. Frames and input events are
// handled by the same loop, so a click never lands in the middle of a frame.
type Driver struct {
	screen  tcell.Screen
	sim     *sim.Simulation
	surf    *cellSurface
	sound   Popper
	verbose bool

	frameTime time.Duration
	prevBtn   tcell.ButtonMask
	paused    bool
}

func NewDriver(screen tcell.Screen, s *sim.Simulation, cellW, cellH float64, tps int) *Driver {
	return &Driver{
		screen:    screen,
		sim:       s,
		surf:      &cellSurface{screen: screen, cellW: cellW, cellH: cellH},
		frameTime: time.Second / time.Duration(tps),
	}
}

func (d *Driver) SetSound(p Popper) { d.sound = p }

func (d *Driver) SetVerbose(v bool) { d.verbose = v }

// Run starts the simulation and blocks until it is stopped, the user quits
// or ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	d.screen.EnableMouse()
	d.sim.Start()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(d.frameTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.sim.Stop()
			return nil

		case ev := <-events:
			if !d.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			if !d.frame() {
				return nil
			}
		}
	}
}

// frame renders one tick and reports whether the loop should go on.
func (d *Driver) frame() bool {
	if !d.paused {
		if !d.sim.RunTick(d.surf) {
			return false
		}
	} else if d.sim.State() != sim.Running {
		return false
	}
	d.drawStatus()
	d.screen.Show()
	return true
}

func (d *Driver) drawStatus() {
	status := fmt.Sprintf(" Circles: %d  Ticks: %d  click: pop  space: pause  q: quit ", d.sim.Len(), d.sim.Ticks())
	if d.paused {
		status = fmt.Sprintf(" Circles: %d  PAUSED ", d.sim.Len())
	}
	d.surf.putString(0, 0, status, tcell.StyleDefault.Reverse(true))
}

func (d *Driver) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			d.sim.Stop()
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
			d.paused = !d.paused
		}

	case *tcell.EventMouse:
		btn := ev.Buttons()
		if btn&tcell.Button1 != 0 && d.prevBtn&tcell.Button1 == 0 {
			col, row := ev.Position()
			d.click(d.surf.world(col, row))
		}
		d.prevBtn = btn

	case *tcell.EventResize:
		// The viewport is fixed at startup; only repaint.
		d.screen.Sync()
	}
	return true
}

func (d *Driver) click(x, y float64) {
	removed := d.sim.HandleClick(x, y)
	if len(removed) == 0 {
		return
	}
	if d.sound != nil {
		d.sound.Pop()
	}
	if d.verbose {
		for _, c := range removed {
			log.Printf("removed %s, %d left", c.Label, d.sim.Len())
		}
	}
}
