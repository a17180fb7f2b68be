package quarkgl

// LightMode selects how faces are shaded.
type LightMode uint8

const (
	LightOff LightMode = iota
	LightAmbientDirectional
)

// Light is an ambient term plus one directional light.
type Light struct {
	Mode      LightMode
	Ambient   float32 // 0..1
	Dir       Vec3    // direction *towards* the scene
	DirAmount float32 // 0..1
}

// Camera is a perspective camera.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	FOVYRad float32
	Near    float32
	Far     float32
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect float32) Mat4 {
	fov := c.FOVYRad
	if fov == 0 {
		fov = 1
	}
	return Mat4Perspective(fov, aspect, c.Near, c.Far)
}

// Scene is a fixed-capacity set of meshes seen through one camera.
type Scene struct {
	Camera Camera
	Light  Light

	meshes []Mesh
	alive  []bool
}

// CreateScene allocates a scene with a fixed mesh capacity.
func CreateScene(maxMeshes int) *Scene {
	if maxMeshes < 0 {
		maxMeshes = 0
	}
	return &Scene{
		Camera: Camera{
			Position: V3(0, 0, 3),
			Up:       V3(0, 1, 0),
			FOVYRad:  1,
			Near:     0.05,
			Far:      100,
		},
		Light: Light{
			Mode: LightOff,
		},
		meshes: make([]Mesh, maxMeshes),
		alive:  make([]bool, maxMeshes),
	}
}

// AddMesh adds an enabled mesh and returns its id, or -1 if the scene is full.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	for i := range s.meshes {
		if s.alive[i] {
			continue
		}
		if m.Transform == (Mat4{}) {
			m.Transform = Mat4Identity()
		}
		m.Enabled = true
		s.meshes[i] = m
		s.alive[i] = true
		return i
	}
	return -1
}

// Mesh returns the mesh with the given id, or nil.
func (s *Scene) Mesh(id int) *Mesh {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return nil
	}
	return &s.meshes[id]
}

func (s *Scene) RemoveMesh(id int) {
	if s == nil || id < 0 || id >= len(s.meshes) {
		return
	}
	s.alive[id] = false
	s.meshes[id] = Mesh{}
}

func (s *Scene) SetMeshEnabled(id int, enabled bool) {
	if m := s.Mesh(id); m != nil {
		m.Enabled = enabled
	}
}

// DisableAll hides every mesh until it is enabled again.
func (s *Scene) DisableAll() {
	if s == nil {
		return
	}
	for i := range s.meshes {
		s.meshes[i].Enabled = false
	}
}

func (s *Scene) UpdateMeshTransform(id int, m Mat4) {
	if mesh := s.Mesh(id); mesh != nil {
		mesh.Transform = m
	}
}

func (s *Scene) eachMesh(fn func(m *Mesh)) {
	for i := range s.meshes {
		if !s.alive[i] {
			continue
		}
		fn(&s.meshes[i])
	}
}
