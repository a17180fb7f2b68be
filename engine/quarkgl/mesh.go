package quarkgl

// Face is a flat-colored triangle (N=3) or quad (N=4). Vertices are listed
// counter-clockwise when seen from the front.
type Face struct {
	Idx   [4]uint16
	N     uint8
	Color Color
}

func Tri(a, b, c uint16) Face     { return Face{Idx: [4]uint16{a, b, c}, N: 3} }
func Quad(a, b, c, d uint16) Face { return Face{Idx: [4]uint16{a, b, c, d}, N: 4} }

// Mesh is a polygon model with an object transform.
type Mesh struct {
	Enabled bool

	Vertices []Vec3
	Faces    []Face

	Transform Mat4
}

// PolygonCount returns the number of faces.
func (m *Mesh) PolygonCount() int {
	if m == nil {
		return 0
	}
	return len(m.Faces)
}

// SetPolygonColor sets the flat color of face i. Out of range is ignored.
func (m *Mesh) SetPolygonColor(i int, c Color) {
	if m == nil || i < 0 || i >= len(m.Faces) {
		return
	}
	m.Faces[i].Color = c
}

// Clone returns a mesh that shares vertices but owns its faces, so two
// clones can be colored independently.
func (m Mesh) Clone() Mesh {
	faces := make([]Face, len(m.Faces))
	copy(faces, m.Faces)
	m.Faces = faces
	return m
}
