// Package pad models controller button state shared by the HAL and the game.
package pad

import "strings"

// ButtonMask is a set of buttons, one bit per button.
type ButtonMask uint16

const (
	Up ButtonMask = 1 << iota
	Right
	Down
	Left
	A
	B
	C
	X
	Y
	Z
	L
	R
	Start
)

// All is every button a Saturn pad reports.
const All = Up | Right | Down | Left | A | B | C | X | Y | Z | L | R | Start

var buttonNames = [...]struct {
	b    ButtonMask
	name string
}{
	{Up, "UP"},
	{Right, "RIGHT"},
	{Down, "DOWN"},
	{Left, "LEFT"},
	{A, "A"},
	{B, "B"},
	{C, "C"},
	{X, "X"},
	{Y, "Y"},
	{Z, "Z"},
	{L, "L"},
	{R, "R"},
	{Start, "START"},
}

// Has reports whether any button in b is set in m.
func (m ButtonMask) Has(b ButtonMask) bool { return m&b != 0 }

func (m ButtonMask) String() string {
	if m == 0 {
		return "none"
	}
	var sb strings.Builder
	for _, n := range buttonNames {
		if m&n.b == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(n.name)
	}
	return sb.String()
}

// Slot is the state of one present controller for a single frame.
type Slot struct {
	Index   int
	Held    ButtonMask
	Pressed ButtonMask // went from released to held this frame
}

// Controller tracks one controller port across frames.
type Controller struct {
	plugged, lastPlugged bool
	current, last        ButtonMask
}

// Update records this frame's sample. An unplugged port reports no buttons.
func (c *Controller) Update(plugged bool, held ButtonMask) {
	c.lastPlugged = c.plugged
	c.last = c.current
	c.plugged = plugged
	if !plugged {
		held = 0
	}
	c.current = held & All
}

func (c *Controller) Present() bool { return c.plugged }

func (c *Controller) Held() ButtonMask { return c.current }

func (c *Controller) Changed() ButtonMask {
	return c.current ^ c.last
}

func (c *Controller) Pressed() ButtonMask {
	return c.Changed() & c.current
}

func (c *Controller) Released() ButtonMask {
	return c.Changed() & c.last
}

func (c *Controller) Plugged() bool {
	return c.plugged && !c.lastPlugged
}

func (c *Controller) Unplugged() bool {
	return !c.plugged && c.lastPlugged
}

// Bank is a fixed set of controller ports.
type Bank struct {
	ctrl []Controller
}

func NewBank(ports int) *Bank {
	if ports < 0 {
		ports = 0
	}
	return &Bank{ctrl: make([]Controller, ports)}
}

func (b *Bank) Len() int { return len(b.ctrl) }

// Controller returns the port or nil when out of range.
func (b *Bank) Controller(i int) *Controller {
	if i < 0 || i >= len(b.ctrl) {
		return nil
	}
	return &b.ctrl[i]
}

// Update samples one port. Out-of-range ports are ignored.
func (b *Bank) Update(i int, plugged bool, held ButtonMask) {
	if c := b.Controller(i); c != nil {
		c.Update(plugged, held)
	}
}

// AppendPresent appends one Slot per plugged port in ascending port order.
func (b *Bank) AppendPresent(dst []Slot) []Slot {
	for i := range b.ctrl {
		c := &b.ctrl[i]
		if !c.plugged {
			continue
		}
		dst = append(dst, Slot{Index: i, Held: c.current, Pressed: c.Pressed()})
	}
	return dst
}
