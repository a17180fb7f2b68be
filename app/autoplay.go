package app

import (
	"siikasaurus/engine/loop"
	"siikasaurus/game"
	"siikasaurus/hal"
	"siikasaurus/pad"
)

const (
	autoplayStartFrame = 30
	// autoplayReaction is how many frames the bot waits before answering a
	// new target.
	autoplayReaction = 20
)

// autoplay plays one virtual pad: it presses START once and then copies
// every target it can reproduce.
type autoplay struct {
	pads *hal.VirtualPads
	slot int
	g    *game.Game

	tracking bool
	target   game.ButtonState
	since    uint64
}

func newAutoplay(pads *hal.VirtualPads, slot int, g *game.Game) *autoplay {
	pads.Plug(slot, true)
	return &autoplay{pads: pads, slot: slot, g: g}
}

func (b *autoplay) Step(ctx *loop.Context) {
	frame := ctx.Frame()
	if !b.g.Started() {
		if frame == autoplayStartFrame {
			b.pads.Set(b.slot, pad.Start)
		} else {
			b.pads.Set(b.slot, 0)
		}
		return
	}

	t := b.g.Target()
	if !b.tracking || !t.Equal(b.target) {
		b.tracking = true
		b.target = t
		b.since = frame
		b.pads.Set(b.slot, 0)
		return
	}
	if frame-b.since < autoplayReaction {
		return
	}
	if m, ok := t.Mask(); ok {
		b.pads.Set(b.slot, m)
	}
}
