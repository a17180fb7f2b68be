package quarkgl

// Target is a pixel sink for the renderer. Implementations clip
// out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RGB565Target renders into a little-endian RGB565 buffer laid out by the
// caller.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) ok() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGB565Target) Clear(c Color) {
	if !t.ok() {
		return
	}
	p := c.RGB565()
	lo, hi := byte(p), byte(p>>8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off+1 >= len(t.Buf) {
				return
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	if !t.ok() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off+1 >= len(t.Buf) {
		return
	}
	p := c.RGB565()
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// Pixel reads back the RGB565 value at x, y.
func (t *RGB565Target) Pixel(x, y int) uint16 {
	if !t.ok() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return 0
	}
	off := y*t.Stride + x*2
	if off+1 >= len(t.Buf) {
		return 0
	}
	return uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8
}
