package models

import (
	"testing"

	"siikasaurus/engine/quarkgl"
	"siikasaurus/game"
)

func TestBuildCounts(t *testing.T) {
	s := Build()
	n := s.PolygonCounts()
	if n[game.ModelBase] != 30 {
		t.Fatalf("base polygons = %d, want 30", n[game.ModelBase])
	}
	for m := game.ModelUp; m < game.ModelCount; m++ {
		if n[m] != 6 {
			t.Fatalf("%v polygons = %d, want 6", m, n[m])
		}
	}
}

func TestBoxFacesPointOutward(t *testing.T) {
	s := Build()
	for m, mesh := range s {
		for fi, f := range mesh.Faces {
			// Box centers are recovered from the eight vertices of the box
			// the face belongs to.
			box := int(f.Idx[0]) / 8 * 8
			var c quarkgl.Vec3
			for i := 0; i < 8; i++ {
				c = c.Add(mesh.Vertices[box+i])
			}
			c = c.Mul(1.0 / 8)

			a := mesh.Vertices[f.Idx[0]]
			n := quarkgl.Cross(mesh.Vertices[f.Idx[1]].Sub(a), mesh.Vertices[f.Idx[2]].Sub(a))
			if quarkgl.Dot(n, a.Sub(c)) <= 0 {
				t.Fatalf("model %d face %d points inward", m, fi)
			}
		}
	}
}

func TestBuildOwnsFaces(t *testing.T) {
	a, b := Build(), Build()
	a[game.ModelBase].SetPolygonColor(0, quarkgl.RGB(1, 2, 3))
	if b[game.ModelBase].Faces[0].Color == quarkgl.RGB(1, 2, 3) {
		t.Fatalf("Build() results share faces")
	}
}
