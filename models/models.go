// Package models builds the pad meshes the game highlights: a controller body
// and one overlay per direction and face button.
package models

import (
	"siikasaurus/engine/quarkgl"
	"siikasaurus/game"
)

// Set holds one mesh per game.Model.
type Set [game.ModelCount]quarkgl.Mesh

// PolygonCounts reports the face count of every mesh.
func (s *Set) PolygonCounts() [game.ModelCount]int {
	var n [game.ModelCount]int
	for i := range s {
		n[i] = s[i].PolygonCount()
	}
	return n
}

// Body extents. Overlays sit on the front face at z=bodyFront.
const (
	bodyHalfW = 1.6
	bodyHalfH = 0.6
	bodyFront = 0.2
	capDepth  = 0.15
	capHalf   = 0.12
)

type spot struct {
	m    game.Model
	x, y float32
}

var spots = [...]spot{
	{game.ModelUp, -0.95, 0.3},
	{game.ModelRight, -0.65, 0},
	{game.ModelDown, -0.95, -0.3},
	{game.ModelLeft, -1.25, 0},
	{game.ModelA, 0.5, -0.2},
	{game.ModelB, 0.85, -0.1},
	{game.ModelC, 1.2, 0},
	{game.ModelX, 0.5, 0.2},
	{game.ModelY, 0.85, 0.3},
	{game.ModelZ, 1.2, 0.4},
}

// Build returns fresh meshes. Faces are owned by the returned Set.
func Build() Set {
	var s Set

	var base builder
	base.box(quarkgl.V3(-bodyHalfW, -bodyHalfH, -bodyFront), quarkgl.V3(bodyHalfW, bodyHalfH, bodyFront))
	base.box(quarkgl.V3(-bodyHalfW, -1.1, -0.25), quarkgl.V3(-0.8, -bodyHalfH, 0.15))
	base.box(quarkgl.V3(0.8, -1.1, -0.25), quarkgl.V3(bodyHalfW, -bodyHalfH, 0.15))
	base.box(quarkgl.V3(-1.0, bodyHalfH, -0.1), quarkgl.V3(-0.6, bodyHalfH+0.1, 0.1))
	base.box(quarkgl.V3(0.6, bodyHalfH, -0.1), quarkgl.V3(1.0, bodyHalfH+0.1, 0.1))
	s[game.ModelBase] = base.mesh()

	for _, sp := range spots {
		var b builder
		b.box(
			quarkgl.V3(sp.x-capHalf, sp.y-capHalf, bodyFront),
			quarkgl.V3(sp.x+capHalf, sp.y+capHalf, bodyFront+capDepth),
		)
		s[sp.m] = b.mesh()
	}
	return s
}

type builder struct {
	verts []quarkgl.Vec3
	faces []quarkgl.Face
}

// box appends an axis-aligned box with outward facing quads. Vertex i of the
// box has bit 0 set for max x, bit 1 for max y and bit 2 for max z.
func (b *builder) box(lo, hi quarkgl.Vec3) {
	o := uint16(len(b.verts))
	for i := 0; i < 8; i++ {
		v := lo
		if i&1 != 0 {
			v.X = hi.X
		}
		if i&2 != 0 {
			v.Y = hi.Y
		}
		if i&4 != 0 {
			v.Z = hi.Z
		}
		b.verts = append(b.verts, v)
	}
	for _, q := range [...][4]uint16{
		{4, 5, 7, 6}, // +z
		{0, 2, 3, 1}, // -z
		{5, 1, 3, 7}, // +x
		{0, 4, 6, 2}, // -x
		{6, 7, 3, 2}, // +y
		{0, 1, 5, 4}, // -y
	} {
		b.faces = append(b.faces, quarkgl.Quad(o+q[0], o+q[1], o+q[2], o+q[3]))
	}
}

func (b *builder) mesh() quarkgl.Mesh {
	return quarkgl.Mesh{
		Vertices:  b.verts,
		Faces:     b.faces,
		Transform: quarkgl.Mat4Identity(),
	}
}
