package hal

import (
	"sync"

	"siikasaurus/pad"
)

// VirtualPads is a Gamepads driven by code instead of hardware. Headless
// runs and tests use it to plug pads and hold buttons.
type VirtualPads struct {
	mu      sync.Mutex
	bank    *pad.Bank
	plugged []bool
	held    []pad.ButtonMask
}

func NewVirtualPads(slots int) *VirtualPads {
	if slots < 0 {
		slots = 0
	}
	return &VirtualPads{
		bank:    pad.NewBank(slots),
		plugged: make([]bool, slots),
		held:    make([]pad.ButtonMask, slots),
	}
}

func (v *VirtualPads) valid(slot int) bool { return slot >= 0 && slot < len(v.held) }

// Plug connects or disconnects a slot. Unplugging releases every button.
func (v *VirtualPads) Plug(slot int, on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.valid(slot) {
		return
	}
	v.plugged[slot] = on
	if !on {
		v.held[slot] = 0
	}
}

// Set replaces the held buttons of a slot.
func (v *VirtualPads) Set(slot int, held pad.ButtonMask) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.valid(slot) {
		v.held[slot] = held & pad.All
	}
}

func (v *VirtualPads) Press(slot int, b pad.ButtonMask) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.valid(slot) {
		v.held[slot] |= b & pad.All
	}
}

func (v *VirtualPads) Release(slot int, b pad.ButtonMask) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.valid(slot) {
		v.held[slot] &^= b
	}
}

func (v *VirtualPads) Poll(dst []pad.Slot) []pad.Slot {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.held {
		v.bank.Update(i, v.plugged[i], v.held[i])
	}
	return v.bank.AppendPresent(dst)
}
