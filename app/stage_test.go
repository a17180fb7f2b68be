package app

import (
	"math"
	"testing"

	"siikasaurus/engine/quarkgl"
	"siikasaurus/game"
)

func near(a, b quarkgl.Vec3) bool {
	const eps = 1e-5
	return math.Abs(float64(a.X-b.X)) < eps &&
		math.Abs(float64(a.Y-b.Y)) < eps &&
		math.Abs(float64(a.Z-b.Z)) < eps
}

func TestTransformUsesRadians(t *testing.T) {
	f := &game.Frame{AngleX: -3.6}
	if got, want := transform(f), quarkgl.Mat4RotateX(-3.6); got != want {
		t.Fatalf("transform(AngleX=-3.6) = %v, want %v", got, want)
	}
	f = &game.Frame{AngleY: math.Pi / 2}
	got := quarkgl.Mat4MulPoint(transform(f), quarkgl.V3(1, 0, 0))
	if want := quarkgl.V3(0, 0, -1); !near(got, want) {
		t.Fatalf("quarter turn about Y moved x axis to %v, want %v", got, want)
	}
}

func TestTransformRotatesYFirst(t *testing.T) {
	f := &game.Frame{AngleX: math.Pi / 2, AngleY: math.Pi / 2}
	got := quarkgl.Mat4MulPoint(transform(f), quarkgl.V3(1, 0, 0))
	if want := quarkgl.V3(0, 1, 0); !near(got, want) {
		t.Fatalf("transform() moved x axis to %v, want %v", got, want)
	}
}

func TestPresentAppliesFrameAngles(t *testing.T) {
	h := newTestHAL()
	a, err := New(h, Options{Config: quietConfig()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for i := 0; i < 60; i++ {
		if err := a.Step(); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}
	rot := a.Game().Rotation()
	if rot.AngleX > -3.5 || rot.AngleX < -3.7 {
		t.Fatalf("AngleX after 60 frames = %v, want about -3.6", rot.AngleX)
	}
	m := a.stage.scene.Mesh(a.stage.ids[game.ModelBase])
	want := quarkgl.Mat4Mul(quarkgl.Mat4RotateX(rot.AngleX), quarkgl.Mat4RotateY(rot.AngleY))
	if m.Transform != want {
		t.Fatalf("base transform = %v, want %v", m.Transform, want)
	}
}
