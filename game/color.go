package game

import "image/color"

// HSV is an 8-bit color whose hue runs around a 256-step wheel.
type HSV struct {
	H, S, V uint8
}

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

// Pack returns the color as 0xRRGGBB.
func (c RGB) Pack() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// HSVToRGB converts with integer math only. The wheel is split into six
// 43-step regions, so the last region is slightly wider than the others.
func HSVToRGB(hsv HSV) RGB {
	if hsv.S == 0 {
		return RGB{R: hsv.V, G: hsv.V, B: hsv.V}
	}

	h, s, v := int(hsv.H), int(hsv.S), int(hsv.V)

	region := h / 43
	remainder := uint8((h - region*43) * 6)
	rem := int(remainder)

	p := uint8((v * (255 - s)) >> 8)
	q := uint8((v * (255 - ((s * rem) >> 8))) >> 8)
	t := uint8((v * (255 - ((s * (255 - rem)) >> 8))) >> 8)

	switch region {
	case 0:
		return RGB{R: hsv.V, G: t, B: p}
	case 1:
		return RGB{R: q, G: hsv.V, B: p}
	case 2:
		return RGB{R: p, G: hsv.V, B: t}
	case 3:
		return RGB{R: p, G: q, B: hsv.V}
	case 4:
		return RGB{R: t, G: p, B: hsv.V}
	default:
		return RGB{R: hsv.V, G: p, B: q}
	}
}
