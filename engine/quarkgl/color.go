package quarkgl

// Color is an 8-bit per channel color.
type Color struct {
	R, G, B uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// Packed builds a Color from 0xRRGGBB.
func Packed(p uint32) Color {
	return Color{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p)}
}

// Shade scales the color by s, clamped to 0..1.
func (c Color) Shade(s float32) Color {
	t := uint32(Clamp01(s) * 255)
	mul := func(ch uint8) uint8 {
		return uint8((uint32(ch) * t) / 255)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B)}
}

// RGB565 packs the color as rrrrrggggggbbbbb.
func (c Color) RGB565() uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}
