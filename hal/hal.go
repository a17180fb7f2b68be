// Package hal is the only contact point between the game and the machine it
// runs on: log output, a framebuffer, controller slots, and a sample sink.
package hal

import (
	"errors"

	"siikasaurus/pad"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Gamepads reports the controller slots.
type Gamepads interface {
	// Poll latches the current button state and appends every present slot
	// to dst in ascending slot order.
	Poll(dst []pad.Slot) []pad.Slot
}

// Input provides access to input devices (if available).
type Input interface {
	Gamepads() Gamepads
}

// PWMAudio is a mono 16-bit sample sink.
type PWMAudio interface {
	Start(sampleRate uint32) error
	Stop() error
	SetVolume(vol uint8)
	// WriteSample queues one sample, blocking while the output is full.
	WriteSample(sample int16)
}

// Audio provides the sample sink. PWM returns nil when there is no output.
type Audio interface {
	PWM() PWMAudio
}

// HAL bundles the devices of one machine.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Audio() Audio
}
