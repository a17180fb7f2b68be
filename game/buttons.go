package game

import (
	"fmt"

	"siikasaurus/pad"
)

// Direction is the d-pad component of a ButtonState.
type Direction int8

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// ButtonState is one snapshot of a pad, or the target players must reproduce.
// Snapshots hold 0 or 1 per button. Targets may hold -1, which no snapshot
// ever equals.
type ButtonState struct {
	Direction Direction
	A, B, C   int8
	X, Y, Z   int8
}

// Equal compares every field.
func (b ButtonState) Equal(o ButtonState) bool {
	return b.Direction == o.Direction &&
		b.A == o.A && b.B == o.B && b.C == o.C &&
		b.X == o.X && b.Y == o.Y && b.Z == o.Z
}

func (b ButtonState) String() string {
	return fmt.Sprintf("D%d A%d B%d C%d X%d Y%d Z%d", b.Direction, b.A, b.B, b.C, b.X, b.Y, b.Z)
}

// Rand is the randomness source used for targets. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Snapshot builds a ButtonState from held buttons. When several directions
// are held the first of up, right, down, left wins.
func Snapshot(held pad.ButtonMask) ButtonState {
	var s ButtonState
	switch {
	case held.Has(pad.Up):
		s.Direction = DirUp
	case held.Has(pad.Right):
		s.Direction = DirRight
	case held.Has(pad.Down):
		s.Direction = DirDown
	case held.Has(pad.Left):
		s.Direction = DirLeft
	}
	s.A = bit(held, pad.A)
	s.B = bit(held, pad.B)
	s.C = bit(held, pad.C)
	s.X = bit(held, pad.X)
	s.Y = bit(held, pad.Y)
	s.Z = bit(held, pad.Z)
	return s
}

func bit(m, b pad.ButtonMask) int8 {
	if m.Has(b) {
		return 1
	}
	return 0
}

// RandomizeTarget draws a new target. Direction lands in -1..3 and each
// button in -1..0, so a target carrying a -1 can never be matched and the
// left direction never comes up.
func RandomizeTarget(r Rand) ButtonState {
	return ButtonState{
		Direction: Direction(r.Intn(5) - 1),
		A:         int8(r.Intn(2) - 1),
		B:         int8(r.Intn(2) - 1),
		C:         int8(r.Intn(2) - 1),
		X:         int8(r.Intn(2) - 1),
		Y:         int8(r.Intn(2) - 1),
		Z:         int8(r.Intn(2) - 1),
	}
}

// RandomizeWinnableTarget draws direction in 0..4 and buttons in 0..1.
// Every result can be reproduced on a pad.
func RandomizeWinnableTarget(r Rand) ButtonState {
	return ButtonState{
		Direction: Direction(r.Intn(5)),
		A:         int8(r.Intn(2)),
		B:         int8(r.Intn(2)),
		C:         int8(r.Intn(2)),
		X:         int8(r.Intn(2)),
		Y:         int8(r.Intn(2)),
		Z:         int8(r.Intn(2)),
	}
}

// Mask returns the held buttons that reproduce b, and false if b holds a
// value no pad can produce.
func (b ButtonState) Mask() (pad.ButtonMask, bool) {
	var m pad.ButtonMask
	switch b.Direction {
	case DirNone:
	case DirUp:
		m |= pad.Up
	case DirRight:
		m |= pad.Right
	case DirDown:
		m |= pad.Down
	case DirLeft:
		m |= pad.Left
	default:
		return 0, false
	}
	for _, f := range []struct {
		v int8
		b pad.ButtonMask
	}{{b.A, pad.A}, {b.B, pad.B}, {b.C, pad.C}, {b.X, pad.X}, {b.Y, pad.Y}, {b.Z, pad.Z}} {
		switch f.v {
		case 0:
		case 1:
			m |= f.b
		default:
			return 0, false
		}
	}
	return m, true
}
