//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// HostConfig sizes the desktop machine.
type HostConfig struct {
	Width, Height int
	// Slots is the number of controller slots.
	Slots int
	// KeyboardSlot is the slot the keyboard drives, or -1 for none.
	KeyboardSlot int
	Deadzone     float64
	Audio        bool
	// Log receives log lines; nil means stdout.
	Log io.Writer
}

func (c *HostConfig) defaults() {
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 240
	}
	if c.Slots <= 0 {
		c.Slots = 12
	}
	if c.Deadzone <= 0 {
		c.Deadzone = 0.5
	}
	if c.Log == nil {
		c.Log = os.Stdout
	}
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	in     Gamepads
	aud    Audio
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{pads: h.in} }
func (h *hostHAL) Audio() Audio     { return h.aud }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	pads Gamepads
}

func (in hostInput) Gamepads() Gamepads { return in.pads }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// nullAudio is the machine with no sound output.
type nullAudio struct{}

func (nullAudio) PWM() PWMAudio { return nil }
