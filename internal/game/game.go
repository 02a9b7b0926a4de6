package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/circle-collisions/internal/config"
	"github.com/iburimskiy/circle-collisions/internal/sim"
)

// Sounder plays feedback when circles are removed. A nil Sounder is allowed.
type Sounder interface {
	Pop()
	Level() float64
	LoadFile(path string) error
}

// Game adapts a Simulation to ebiten. Update runs one simulation frame into
// a display list and Draw replays it, so a frame is always cleared, swept,
// moved and drawn in a single step.
type Game struct {
	sim     *sim.Simulation
	sound   Sounder
	verbose bool

	frame sim.Frame

	// input edge detection
	prevKey map[ebiten.Key]bool

	// state
	paused  bool
	lastErr error
}

func NewGame(s *sim.Simulation, sound Sounder, verbose bool) *Game {
	return &Game{
		sim:     s,
		sound:   sound,
		verbose: verbose,
		prevKey: map[ebiten.Key]bool{},
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.sim.Stop()
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openSoundFileDialog(); err != nil {
			g.lastErr = err
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.click(float64(x), float64(y))
	}

	if !g.advance() {
		return ebiten.Termination
	}
	return nil
}

// advance runs one frame unless paused. It reports false once the
// simulation no longer wants frames.
func (g *Game) advance() bool {
	if g.paused {
		return g.sim.State() != sim.Stopped
	}
	return g.sim.RunTick(&g.frame)
}

func (g *Game) click(x, y float64) {
	removed := g.sim.HandleClick(x, y)
	if len(removed) == 0 {
		return
	}
	if g.sound != nil {
		g.sound.Pop()
	}
	if g.verbose {
		for _, c := range removed {
			log.Printf("removed %s at (%.0f, %.0f), %d left", c.Label, c.Pos.X, c.Pos.Y, g.sim.Len())
		}
	}
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.verbose {
		log.Printf("paused=%v", g.paused)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.Background)
	g.frame.Replay(screenSurface{dst: screen})

	g.drawLevelMeter(screen)
	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

func (g *Game) status() string {
	vp := g.sim.Viewport()
	elapsed := ticksToDuration(g.sim.Ticks(), config.TicksPerSecond)
	s := fmt.Sprintf("Circles: %d  Time: %s  %dx%d", g.sim.Len(), formatDuration(elapsed), int(vp.Width), int(vp.Height))
	if g.paused {
		s += "  Paused - Space to resume"
	} else {
		s += "  Click a circle to pop it, Space: pause, O: sound, Esc/Q: quit"
	}
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}

var (
	meterLow  = colorful.Color{R: 0.2, G: 0.8, B: 0.4}
	meterHigh = colorful.Color{R: 1, G: 0.25, B: 0.2}
)

func (g *Game) drawLevelMeter(screen *ebiten.Image) {
	if g.sound == nil {
		return
	}
	level := g.sound.Level()
	if level <= 0 {
		return
	}

	const (
		barX      = 12
		barWidth  = 8
		barHeight = 60
	)
	barY := float32(g.sim.Viewport().Height) - barHeight - 12

	r, gg, b := meterLow.BlendHcl(meterHigh, level).Clamped().RGB255()
	fill := color.RGBA{R: r, G: gg, B: b, A: 220}

	h := float32(level) * barHeight
	vector.DrawFilledRect(screen, barX, barY+barHeight-h, barWidth, h, fill, false)
	vector.StrokeRect(screen, barX, barY, barWidth, barHeight, 1, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := g.sim.Viewport()
	return int(vp.Width), int(vp.Height)
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	vp := g.sim.Viewport()
	ebiten.SetWindowSize(int(vp.Width), int(vp.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(config.TicksPerSecond)

	g.sim.Start()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
