package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/circle-collisions/internal/config"
	"github.com/iburimskiy/circle-collisions/internal/sim"
)

var labelFace font.Face = basicfont.Face7x13

// screenSurface draws simulation frames onto an ebiten image.
type screenSurface struct {
	dst *ebiten.Image
}

func (s screenSurface) Clear(x, y, w, h float64) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), config.Background, false)
}

func (s screenSurface) StrokeCircle(cx, cy, r, lineWidth float64, c color.Color) {
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(r), float32(lineWidth), c, true)
}

// FillText ignores style.Size; the bitmap face has a single size.
func (s screenSurface) FillText(str string, x, y float64, style sim.TextStyle) {
	b := text.BoundString(labelFace, str)
	ox, oy := textOrigin(b, x, y, style)
	text.Draw(s.dst, str, labelFace, ox, oy, style.Color)
}

// textOrigin converts an anchor point into the dot position text.Draw
// expects, given the string's bounds relative to the dot.
func textOrigin(b image.Rectangle, x, y float64, style sim.TextStyle) (int, int) {
	ox := x - float64(b.Min.X)
	switch style.Align {
	case sim.AlignCenter:
		ox -= float64(b.Dx()) / 2
	case sim.AlignRight:
		ox -= float64(b.Dx())
	}

	oy := y
	switch style.Baseline {
	case sim.BaselineTop:
		oy -= float64(b.Min.Y)
	case sim.BaselineMiddle:
		oy -= float64(b.Min.Y+b.Max.Y) / 2
	case sim.BaselineBottom:
		oy -= float64(b.Max.Y)
	}
	return int(ox + 0.5), int(oy + 0.5)
}
