package hal

import "siikasaurus/pad"

// slotMap hands out controller slots to physical devices in connection
// order. The reserved slot (the keyboard's) is never given to a device.
type slotMap struct {
	reserved int
	owner    []int // slot -> device id, -1 when free
}

func newSlotMap(slots, reserved int) *slotMap {
	if slots < 0 {
		slots = 0
	}
	m := &slotMap{reserved: reserved, owner: make([]int, slots)}
	for i := range m.owner {
		m.owner[i] = -1
	}
	return m
}

func (m *slotMap) lookup(id int) (int, bool) {
	for slot, o := range m.owner {
		if o == id {
			return slot, true
		}
	}
	return -1, false
}

// assign returns the slot owned by id, claiming the lowest free one if it
// has none. It fails when every slot is taken.
func (m *slotMap) assign(id int) (int, bool) {
	if slot, ok := m.lookup(id); ok {
		return slot, true
	}
	for slot, o := range m.owner {
		if o == -1 && slot != m.reserved {
			m.owner[slot] = id
			return slot, true
		}
	}
	return -1, false
}

func (m *slotMap) release(id int) (int, bool) {
	slot, ok := m.lookup(id)
	if ok {
		m.owner[slot] = -1
	}
	return slot, ok
}

// prune frees the slots of devices missing from live and appends the freed
// slots to dst.
func (m *slotMap) prune(live []int, dst []int) []int {
	for slot, o := range m.owner {
		if o == -1 {
			continue
		}
		found := false
		for _, id := range live {
			if id == o {
				found = true
				break
			}
		}
		if !found {
			m.owner[slot] = -1
			dst = append(dst, slot)
		}
	}
	return dst
}

// stickDirs converts an analog stick position in [-1, 1] into d-pad bits.
// Positive y points down.
func stickDirs(x, y, deadzone float64) pad.ButtonMask {
	var m pad.ButtonMask
	switch {
	case y < -deadzone:
		m |= pad.Up
	case y > deadzone:
		m |= pad.Down
	}
	switch {
	case x < -deadzone:
		m |= pad.Left
	case x > deadzone:
		m |= pad.Right
	}
	return m
}
