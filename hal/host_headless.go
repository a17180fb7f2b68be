//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host HostConfig
	Hz   int
	// Ticks stops the run after this many steps; 0 runs until ctx ends.
	Ticks uint64
	// Pads, when set, drives the controller slots. Otherwise a fresh
	// VirtualPads with Host.Slots slots is used.
	Pads *VirtualPads
}

// RunHeadless runs the app without opening a window. There is no audio
// output; the framebuffer is kept in memory.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	cfg.Host.defaults()

	pads := cfg.Pads
	if pads == nil {
		pads = NewVirtualPads(cfg.Host.Slots)
	}
	h := &hostHAL{
		logger: &hostLogger{w: cfg.Host.Log},
		fb:     newHostFramebuffer(cfg.Host.Width, cfg.Host.Height),
		in:     pads,
		aud:    nullAudio{},
	}
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
