package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"siikasaurus/config"
	"siikasaurus/engine/loop"
	"siikasaurus/engine/quarkgl"
	"siikasaurus/game"
	"siikasaurus/hal"
	"siikasaurus/pad"
)

type testLog struct {
	mu    sync.Mutex
	lines []string
}

func (l *testLog) WriteLineString(s string) {
	l.mu.Lock()
	l.lines = append(l.lines, s)
	l.mu.Unlock()
}

func (l *testLog) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *testLog) has(prefix string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.lines {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

type testFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newTestFB(w, h int) *testFB { return &testFB{w: w, h: h, buf: make([]byte, w*h*2)} }

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { f.presents++; return nil }

func (f *testFB) ClearRGB(r, g, b uint8) {
	p := quarkgl.RGB(r, g, b).RGB565()
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

func (f *testFB) pixel(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

type testHAL struct {
	log  *testLog
	fb   *testFB
	pads *hal.VirtualPads
}

func newTestHAL() *testHAL {
	return &testHAL{log: &testLog{}, fb: newTestFB(320, 240), pads: hal.NewVirtualPads(game.MaxDevices)}
}

func (h *testHAL) Logger() hal.Logger           { return h.log }
func (h *testHAL) Display() hal.Display         { return h }
func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Input() hal.Input             { return h }
func (h *testHAL) Gamepads() hal.Gamepads       { return h.pads }
func (h *testHAL) Audio() hal.Audio             { return nil }

func quietConfig() config.Config {
	c := config.Default()
	c.Audio.Enabled = false
	return c
}

func TestStartAndScoreThroughPads(t *testing.T) {
	h := newTestHAL()
	cfg := quietConfig()
	cfg.Game.WinnableTargets = true
	a, err := New(h, Options{Config: cfg})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer a.Close()

	h.pads.Plug(3, true)
	h.pads.Press(3, pad.Start)
	if err := a.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	if !a.Game().Started() {
		t.Fatalf("game not started after START on slot 3")
	}
	if !h.log.has("game: started by P4") {
		t.Fatalf("log = %v, want start line", h.log.lines)
	}

	h.pads.Release(3, pad.Start)
	for i := 0; i < 500 && a.Game().Score(3) == 0; i++ {
		m, ok := a.Game().Target().Mask()
		if !ok {
			t.Fatalf("Target() = %v, not reproducible", a.Game().Target())
		}
		h.pads.Set(3, m)
		if err := a.Step(); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}
	if a.Game().Score(3) == 0 {
		t.Fatalf("Score(3) = 0 after copying targets")
	}
	if !h.log.has("game: P4 scored (1)") {
		t.Fatalf("log = %v, want score line", h.log.lines)
	}
	if h.fb.presents != int(a.Frames()) {
		t.Fatalf("presents = %d, want %d", h.fb.presents, a.Frames())
	}
}

func TestSlotsBeyondMaxDevicesIgnored(t *testing.T) {
	h := newTestHAL()
	cfg := quietConfig()
	cfg.Game.MaxDevices = 2
	a, err := New(h, Options{Config: cfg})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h.pads.Plug(5, true)
	h.pads.Press(5, pad.Start)
	a.Step()
	if a.Game().Started() {
		t.Fatalf("START on slot 5 started a 2-slot game")
	}
}

func TestStageBackgroundAndModel(t *testing.T) {
	h := newTestHAL()
	a, err := New(h, Options{Config: quietConfig()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := a.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	bg := game.HSVToRGB(game.HSV{H: 129, S: 255, V: 255})
	want := quarkgl.Packed(bg.Pack()).RGB565()
	if got := h.fb.pixel(1, 1); got != want {
		t.Fatalf("corner pixel = %#04x, want background %#04x", got, want)
	}
	if got := h.fb.pixel(160, 120); got == want {
		t.Fatalf("center pixel is background, want the pad model")
	}
}

func TestPanicHaltsLoop(t *testing.T) {
	h := newTestHAL()
	a, err := New(h, Options{Config: quietConfig(), HaltOnPanic: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	a.loop.AddTask("boom", loop.TaskFunc(func(*loop.Context) { panic("boom") }))

	if err := a.Step(); !errors.Is(err, ErrPanicked) {
		t.Fatalf("Step() error = %v, want ErrPanicked", err)
	}
	if !h.log.has("panic: boom") {
		t.Fatalf("log = %v, want panic line", h.log.lines)
	}
	white := quarkgl.RGB(255, 255, 255).RGB565()
	if got := h.fb.pixel(h.fb.w-1, 1); got != white {
		t.Fatalf("panic screen corner = %#04x, want white", got)
	}
	frames := a.Frames()
	a.Step()
	if a.Frames() != frames {
		t.Fatalf("loop ran a frame after a panic")
	}
}

func TestAutoplayHeadless(t *testing.T) {
	cfg := quietConfig()
	cfg.Game.WinnableTargets = true
	log := &strings.Builder{}
	pads := hal.NewVirtualPads(game.MaxDevices)

	var a *App
	newApp := func(h hal.HAL) func() error {
		var err error
		a, err = New(h, Options{Config: cfg, Autoplay: true, Pads: pads, HaltOnPanic: true})
		if err != nil {
			return func() error { return err }
		}
		return a.Step
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
		Host:  hal.HostConfig{Width: 320, Height: 240, Slots: game.MaxDevices, Log: log},
		Hz:    2000,
		Ticks: 300,
		Pads:  pads,
	})
	if err != nil {
		t.Fatalf("RunHeadless() error = %v", err)
	}
	a.Close()

	if !a.Game().Started() {
		t.Fatalf("autoplay never started the game")
	}
	if a.Game().Score(0) == 0 {
		t.Fatalf("autoplay scored nothing in 300 frames")
	}
	out := log.String()
	for _, want := range []string{"boot: siikasaurus", "game: started by P1", "score: P1 "} {
		if !strings.Contains(out, want) {
			t.Fatalf("log missing %q:\n%s", want, out)
		}
	}
}

func TestAutoplayNeedsPads(t *testing.T) {
	if _, err := New(newTestHAL(), Options{Config: quietConfig(), Autoplay: true}); err == nil {
		t.Fatalf("New() with autoplay and no pads succeeded")
	}
}

func TestTakeRunes(t *testing.T) {
	p, rest := takeRunes("héllo", 2)
	if p != "hé" || rest != "llo" {
		t.Fatalf("takeRunes() = %q, %q, want hé, llo", p, rest)
	}
	if p, rest := takeRunes("ab", 5); p != "ab" || rest != "" {
		t.Fatalf("takeRunes() = %q, %q, want ab, empty", p, rest)
	}
}
