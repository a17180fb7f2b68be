//go:build !tinygo && cgo

package hal

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"siikasaurus/pad"
)

var keyboardLayout = []struct {
	key ebiten.Key
	btn pad.ButtonMask
}{
	{ebiten.KeyArrowUp, pad.Up},
	{ebiten.KeyArrowRight, pad.Right},
	{ebiten.KeyArrowDown, pad.Down},
	{ebiten.KeyArrowLeft, pad.Left},
	{ebiten.KeyZ, pad.A},
	{ebiten.KeyX, pad.B},
	{ebiten.KeyC, pad.C},
	{ebiten.KeyA, pad.X},
	{ebiten.KeyS, pad.Y},
	{ebiten.KeyD, pad.Z},
	{ebiten.KeyQ, pad.L},
	{ebiten.KeyE, pad.R},
	{ebiten.KeyEnter, pad.Start},
}

var standardLayout = []struct {
	btn ebiten.StandardGamepadButton
	pad pad.ButtonMask
}{
	{ebiten.StandardGamepadButtonLeftTop, pad.Up},
	{ebiten.StandardGamepadButtonLeftRight, pad.Right},
	{ebiten.StandardGamepadButtonLeftBottom, pad.Down},
	{ebiten.StandardGamepadButtonLeftLeft, pad.Left},
	{ebiten.StandardGamepadButtonRightBottom, pad.A},
	{ebiten.StandardGamepadButtonRightRight, pad.B},
	{ebiten.StandardGamepadButtonFrontTopRight, pad.C},
	{ebiten.StandardGamepadButtonRightLeft, pad.X},
	{ebiten.StandardGamepadButtonRightTop, pad.Y},
	{ebiten.StandardGamepadButtonFrontTopLeft, pad.Z},
	{ebiten.StandardGamepadButtonFrontBottomLeft, pad.L},
	{ebiten.StandardGamepadButtonFrontBottomRight, pad.R},
	{ebiten.StandardGamepadButtonCenterRight, pad.Start},
}

// rawLayout maps the first buttons of pads without a standard layout.
var rawLayout = []pad.ButtonMask{
	pad.A, pad.B, pad.C, pad.X, pad.Y, pad.Z, pad.L, pad.R, pad.Start,
}

// hostGamepads maps the keyboard and Ebiten gamepads onto controller slots.
// sample runs on the Ebiten update goroutine; Poll latches what it saw.
type hostGamepads struct {
	mu       sync.Mutex
	bank     *pad.Bank
	slots    *slotMap
	keyboard int
	deadzone float64
	log      Logger

	plugged []bool
	held    []pad.ButtonMask

	ids     []ebiten.GamepadID
	fresh   []ebiten.GamepadID
	live    []int
	scratch []int
}

func newHostGamepads(slots, keyboardSlot int, deadzone float64, log Logger) *hostGamepads {
	if keyboardSlot >= slots {
		keyboardSlot = -1
	}
	g := &hostGamepads{
		bank:     pad.NewBank(slots),
		slots:    newSlotMap(slots, keyboardSlot),
		keyboard: keyboardSlot,
		deadzone: deadzone,
		log:      log,
		plugged:  make([]bool, slots),
		held:     make([]pad.ButtonMask, slots),
	}
	if keyboardSlot >= 0 {
		g.plugged[keyboardSlot] = true
	}
	return g
}

func (g *hostGamepads) sample() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.held {
		g.held[i] = 0
	}

	g.fresh = inpututil.AppendJustConnectedGamepadIDs(g.fresh[:0])
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
	g.live = g.live[:0]
	for _, id := range g.ids {
		g.live = append(g.live, int(id))
	}
	g.scratch = g.slots.prune(g.live, g.scratch[:0])
	for _, slot := range g.scratch {
		g.plugged[slot] = false
		g.logf("pad: slot %d disconnected", slot+1)
	}

	for _, id := range g.ids {
		if _, ok := g.slots.lookup(int(id)); ok {
			continue
		}
		if slot, ok := g.slots.assign(int(id)); ok {
			g.plugged[slot] = true
			g.logf("pad: %s on slot %d", ebiten.GamepadName(id), slot+1)
		} else if g.justConnected(id) {
			g.logf("pad: %s ignored, all slots taken", ebiten.GamepadName(id))
		}
	}

	for _, id := range g.ids {
		slot, ok := g.slots.lookup(int(id))
		if !ok {
			continue
		}
		g.held[slot] = g.buttons(id)
	}

	if g.keyboard >= 0 {
		var m pad.ButtonMask
		for _, k := range keyboardLayout {
			if ebiten.IsKeyPressed(k.key) {
				m |= k.btn
			}
		}
		g.held[g.keyboard] = m
	}
}

func (g *hostGamepads) justConnected(id ebiten.GamepadID) bool {
	for _, f := range g.fresh {
		if f == id {
			return true
		}
	}
	return false
}

func (g *hostGamepads) buttons(id ebiten.GamepadID) pad.ButtonMask {
	var m pad.ButtonMask
	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		for _, b := range standardLayout {
			if ebiten.IsStandardGamepadButtonPressed(id, b.btn) {
				m |= b.pad
			}
		}
		m |= stickDirs(
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
			g.deadzone,
		)
		return m
	}
	for i, b := range rawLayout {
		if ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton0+ebiten.GamepadButton(i)) {
			m |= b
		}
	}
	return m
}

func (g *hostGamepads) Poll(dst []pad.Slot) []pad.Slot {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.held {
		g.bank.Update(i, g.plugged[i], g.held[i])
	}
	return g.bank.AppendPresent(dst)
}

func (g *hostGamepads) logf(format string, args ...any) {
	if g.log != nil {
		g.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}
