package game

import (
	"math/rand"
	"testing"

	"siikasaurus/pad"
)

// seqRand replays fixed draws, each reduced modulo n.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func TestRandomizeTargetDomain(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	var dirs [5]int
	for n := 0; n < 10000; n++ {
		b := RandomizeTarget(r)
		if b.Direction < -1 || b.Direction > 3 {
			t.Fatalf("direction %d out of range", b.Direction)
		}
		dirs[b.Direction+1]++
		for _, v := range []int8{b.A, b.B, b.C, b.X, b.Y, b.Z} {
			if v != -1 && v != 0 {
				t.Fatalf("button %d out of range in %v", v, b)
			}
		}
	}
	for d, n := range dirs {
		if n == 0 {
			t.Fatalf("direction %d never drawn", d-1)
		}
	}
}

func TestRandomizeWinnableTargetDomain(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	sawLeft := false
	for n := 0; n < 10000; n++ {
		b := RandomizeWinnableTarget(r)
		m, ok := b.Mask()
		if !ok {
			t.Fatalf("winnable target %v has no mask", b)
		}
		if got := Snapshot(m); got != b {
			t.Fatalf("Snapshot(%v) = %v, want %v", m, got, b)
		}
		sawLeft = sawLeft || b.Direction == DirLeft
	}
	if !sawLeft {
		t.Fatalf("left never drawn")
	}
}

func TestSnapshotDirectionPriority(t *testing.T) {
	cases := []struct {
		held pad.ButtonMask
		want Direction
	}{
		{0, DirNone},
		{pad.Left, DirLeft},
		{pad.Down | pad.Left, DirDown},
		{pad.Right | pad.Down, DirRight},
		{pad.Up | pad.Right | pad.Down | pad.Left, DirUp},
	}
	for _, tc := range cases {
		if got := Snapshot(tc.held).Direction; got != tc.want {
			t.Fatalf("Snapshot(%v).Direction = %d, want %d", tc.held, got, tc.want)
		}
	}
	s := Snapshot(pad.A | pad.Z | pad.Start | pad.L)
	if s.A != 1 || s.Z != 1 || s.B != 0 || s.C != 0 || s.X != 0 || s.Y != 0 {
		t.Fatalf("Snapshot buttons = %v", s)
	}
}

func TestNegativeTargetNeverMatches(t *testing.T) {
	targets := []ButtonState{
		{Direction: -1},
		{A: -1},
		{Direction: DirUp, Z: -1},
	}
	for _, target := range targets {
		if _, ok := target.Mask(); ok {
			t.Fatalf("%v reported a mask", target)
		}
		for m := pad.ButtonMask(0); m <= pad.All; m++ {
			if Snapshot(m).Equal(target) {
				t.Fatalf("Snapshot(%v) matched %v", m, target)
			}
		}
	}
}
