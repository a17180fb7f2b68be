package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"siikasaurus/engine/loop"
	"siikasaurus/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// installPanicHandler logs a task panic with its stack and paints it over
// the framebuffer. The loop stays halted afterwards.
func installPanicHandler(a *App) {
	a.loop.SetPanicHandler(func(info loop.PanicInfo) {
		lines := panicLines(info)
		for _, line := range lines {
			a.logf("%s", line)
		}

		disp := a.h.Display()
		if disp == nil {
			return
		}
		fb := disp.Framebuffer()
		if fb == nil {
			return
		}
		fb.ClearRGB(255, 255, 255)
		drawPanic(panicDisplay{fb: fb}, lines)
		_ = fb.Present()
	})
}

func panicLines(info loop.PanicInfo) []string {
	lines := []string{
		"Siikasaurus panic:",
		fmt.Sprintf("task: %d (%s)", info.TaskID, info.Task),
		fmt.Sprintf("frame: %d", info.Frame),
		fmt.Sprintf("panic: %v", info.Value),
	}
	if len(info.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(info.Stack), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// drawPanic wraps lines to the screen width and stops at the bottom edge.
func drawPanic(d panicDisplay, lines []string) {
	font := &proggy.TinySZ8pt7b
	fontHeight := int16(font.GetYAdvance())
	_, outbox := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outbox)
	if fontWidth <= 0 || fontHeight <= 0 {
		return
	}

	fg := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	maxW, maxH := d.Size()
	cols := max(maxW/fontWidth, 1)

	y := fontHeight
	for _, line := range lines {
		for len(line) > 0 {
			if y > maxH {
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

type panicDisplay struct {
	fb hal.Framebuffer
}

func (d panicDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d panicDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}

	pixel := uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d panicDisplay) Display() error { return nil }

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
