package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/iburimskiy/circle-collisions/internal/sim"
)

const ringRune = '·'

// cellSurface maps world pixels onto terminal cells of cellW x cellH pixels.
type cellSurface struct {
	screen       tcell.Screen
	cellW, cellH float64
}

// Viewport returns the world size covered by the screen.
func Viewport(screen tcell.Screen, cellW, cellH float64) sim.Viewport {
	w, h := screen.Size()
	return sim.Viewport{Width: float64(w) * cellW, Height: float64(h) * cellH}
}

func (s *cellSurface) cell(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

// world returns the pixel at the centre of a cell.
func (s *cellSurface) world(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.cellW, (float64(row) + 0.5) * s.cellH
}

func (s *cellSurface) inside(col, row int) bool {
	w, h := s.screen.Size()
	return col >= 0 && row >= 0 && col < w && row < h
}

func (s *cellSurface) Clear(x, y, w, h float64) {
	c0, r0 := s.cell(x, y)
	c1, r1 := s.cell(x+w, y+h)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if s.inside(col, row) {
				s.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
			}
		}
	}
}

func (s *cellSurface) StrokeCircle(cx, cy, r, _ float64, c color.Color) {
	style := tcell.StyleDefault.Foreground(toTCell(c))

	// Enough samples to touch every cell on the circumference.
	steps := int(2*math.Pi*r/math.Min(s.cellW, s.cellH)) * 2
	if steps < 12 {
		steps = 12
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		col, row := s.cell(cx+r*math.Cos(a), cy+r*math.Sin(a))
		if s.inside(col, row) {
			s.screen.SetContent(col, row, ringRune, nil, style)
		}
	}
}

func (s *cellSurface) FillText(text string, x, y float64, style sim.TextStyle) {
	col, row := s.cell(x, y)
	width := runewidth.StringWidth(text)
	switch style.Align {
	case sim.AlignCenter:
		col -= width / 2
	case sim.AlignRight:
		col -= width
	}
	s.putString(col, row, text, tcell.StyleDefault.Foreground(toTCell(style.Color)))
}

func (s *cellSurface) putString(col, row int, text string, style tcell.Style) {
	for _, r := range text {
		if s.inside(col, row) {
			s.screen.SetContent(col, row, r, nil, style)
		}
		col += runewidth.RuneWidth(r)
	}
}

func toTCell(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return tcell.ColorDefault
	}
	r, g, b := cc.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
