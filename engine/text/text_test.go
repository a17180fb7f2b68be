package text

import (
	"testing"

	"siikasaurus/engine/quarkgl"
)

func newTarget(w, h int) *quarkgl.RGB565Target {
	return &quarkgl.RGB565Target{Buf: make([]byte, w*h*2), Stride: w * 2, W: w, H: h}
}

func bounds(t *quarkgl.RGB565Target) (minX, minY, maxX, maxY int, drawn bool) {
	minX, minY = t.W, t.H
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			if t.Pixel(x, y) == 0 {
				continue
			}
			drawn = true
			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x), max(maxY, y)
		}
	}
	return
}

func TestPrintStartsAtTopLeft(t *testing.T) {
	tgt := newTarget(160, 60)
	o := New(tgt)
	o.Print(10, 20, 1, "HI")

	minX, minY, _, _, ok := bounds(tgt)
	if !ok {
		t.Fatalf("nothing drawn")
	}
	if minX < 10 || minX > 12 || minY < 20 || minY > 22 {
		t.Fatalf("text starts at (%d,%d), want near (10,20)", minX, minY)
	}
	if got := tgt.Pixel(minX, minY); got != quarkgl.RGB(0, 255, 0).RGB565() {
		t.Fatalf("pixel = %#04x, want green", got)
	}
}

func TestPrintScales(t *testing.T) {
	small, big := newTarget(200, 80), newTarget(200, 80)
	New(small).Print(0, 0, 1, "SCORE")
	New(big).Print(0, 0, 2, "SCORE")

	_, _, sw, sh, _ := bounds(small)
	_, _, bw, bh, _ := bounds(big)
	if bw < 2*sw || bh < 2*sh {
		t.Fatalf("scaled extent %dx%d, want at least twice %dx%d", bw, bh, sw, sh)
	}
}

func TestPrintClipsAndIgnoresEmpty(t *testing.T) {
	tgt := newTarget(16, 16)
	o := New(tgt)
	o.Print(0, 0, 1, "")
	if _, _, _, _, ok := bounds(tgt); ok {
		t.Fatalf("empty string drew pixels")
	}
	o.Print(10, 10, 1.9, "PRESS START")
	var nilOverlay *Overlay
	nilOverlay.Print(0, 0, 1, "x")
}

func TestWidth(t *testing.T) {
	o := New(newTarget(8, 8))
	if w1, w2 := o.Width("AB", 1), o.Width("AB", 2); w1 <= 0 || w2 != 2*w1 {
		t.Fatalf("Width() = %d/%d", w1, w2)
	}
}
