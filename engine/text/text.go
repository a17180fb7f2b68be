// Package text draws scaled bitmap strings over a rendered frame.
package text

import (
	"image/color"

	"siikasaurus/engine/quarkgl"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Overlay prints strings into a quarkgl target. It implements
// drivers.Displayer so tinyfont can draw into it; coordinates seen by the
// font are divided by the current scale.
type Overlay struct {
	Font  tinyfont.Fonter
	Color color.RGBA

	target *quarkgl.RGB565Target
	scale  float32
	ascent int16
}

var _ drivers.Displayer = (*Overlay)(nil)

// Green is the default text color.
var Green = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}

func New(t *quarkgl.RGB565Target) *Overlay {
	o := &Overlay{
		Font:   &proggy.TinySZ8pt7b,
		Color:  Green,
		target: t,
		scale:  1,
	}
	o.ascent = ascent(o.Font)
	return o
}

// ascent is the distance from the top of the tallest capital to the baseline.
func ascent(f tinyfont.Fonter) int16 {
	info := f.GetGlyph('W').Info()
	if a := -int16(info.YOffset); a > 0 {
		return a
	}
	return int16(f.GetYAdvance())
}

// Print draws s with its top-left corner at x, y in screen pixels.
func (o *Overlay) Print(x, y int, scale float32, s string) {
	if o == nil || o.target == nil || s == "" {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	o.scale = scale
	lx := int16(float32(x) / scale)
	ly := int16(float32(y)/scale) + o.ascent
	tinyfont.WriteLine(o, o.Font, lx, ly, s, o.Color)
	o.scale = 1
}

// Width returns the width of s in screen pixels at a scale.
func (o *Overlay) Width(s string, scale float32) int {
	_, w := tinyfont.LineWidth(o.Font, s)
	return int(float32(w) * scale)
}

func (o *Overlay) Size() (x, y int16) {
	w, h := o.target.Size()
	return int16(float32(w) / o.scale), int16(float32(h) / o.scale)
}

// SetPixel fills the screen pixels covered by logical pixel x, y.
func (o *Overlay) SetPixel(x, y int16, c color.RGBA) {
	x0, x1 := o.span(x)
	y0, y1 := o.span(y)
	qc := quarkgl.RGB(c.R, c.G, c.B)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			o.target.SetPixel(px, py, qc)
		}
	}
}

func (o *Overlay) span(v int16) (lo, hi int) {
	lo = int(float32(v) * o.scale)
	hi = int(float32(v+1) * o.scale)
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

func (o *Overlay) Display() error { return nil }
