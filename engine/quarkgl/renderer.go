package quarkgl

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderWireframe RenderMode = iota
	RenderSolidFlat
)

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it; scratch buffers grow to the largest mesh and
// target seen and are kept.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	Cull       bool
	ClearColor Color

	depthBuf []float32
	screen   []screenPoint
	world    []Vec3
}

type screenPoint struct {
	x, y int
	z    float32
	ok   bool
}

// NewRenderer creates a flat-shading renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:  RenderSolidFlat,
		Cull:  true,
		Depth: enableDepth,
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on || w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render clears the target to ClearColor and draws every enabled mesh.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	view := s.Camera.View()
	proj := s.Camera.Projection(float32(w) / float32(h))
	viewProj := Mat4Mul(proj, view)

	s.eachMesh(func(m *Mesh) {
		if !m.Enabled {
			return
		}
		r.renderMesh(t, w, h, viewProj, m, s.Light)
	})
}

func (r *Renderer) renderMesh(t Target, w, h int, viewProj Mat4, m *Mesh, light Light) {
	if len(m.Vertices) == 0 || len(m.Faces) == 0 {
		return
	}
	model := m.Transform
	if model == (Mat4{}) {
		model = Mat4Identity()
	}
	mvp := Mat4Mul(viewProj, model)

	if cap(r.screen) < len(m.Vertices) {
		r.screen = make([]screenPoint, len(m.Vertices))
		r.world = make([]Vec3, len(m.Vertices))
	}
	screen := r.screen[:len(m.Vertices)]
	world := r.world[:len(m.Vertices)]
	for i, v := range m.Vertices {
		screen[i] = project(mvp, v, w, h)
		if light.Mode == LightAmbientDirectional {
			world[i] = Mat4MulPoint(model, v)
		}
	}

	for _, f := range m.Faces {
		n := int(f.N)
		if n != 3 && n != 4 {
			continue
		}
		var pts [4]screenPoint
		valid := true
		for k := 0; k < n; k++ {
			idx := int(f.Idx[k])
			if idx >= len(screen) || !screen[idx].ok {
				valid = false
				break
			}
			pts[k] = screen[idx]
		}
		if !valid {
			continue
		}

		c := f.Color
		if light.Mode == LightAmbientDirectional {
			nrm := Normalize(Cross(
				world[f.Idx[1]].Sub(world[f.Idx[0]]),
				world[f.Idx[2]].Sub(world[f.Idx[0]]),
			))
			c = c.Shade(lightIntensity(light, nrm))
		}

		if r.Mode == RenderWireframe {
			if r.Cull && area(pts[0], pts[1], pts[2]) < 0 {
				continue
			}
			for k := 0; k < n; k++ {
				a, b := pts[k], pts[(k+1)%n]
				r.drawLine(t, a.x, a.y, b.x, b.y, c)
			}
			continue
		}

		r.fillTriangle(t, w, h, pts[0], pts[1], pts[2], c)
		if n == 4 {
			r.fillTriangle(t, w, h, pts[0], pts[2], pts[3], c)
		}
	}
}

// project maps v to screen space. Points on or behind the camera plane are
// marked not ok and drop every face that uses them.
func project(mvp Mat4, v Vec3, w, h int) screenPoint {
	p := Mat4MulV4(mvp, Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1})
	if p.W <= 0 {
		return screenPoint{}
	}
	inv := 1 / p.W
	nx, ny, nz := p.X*inv, p.Y*inv, p.Z*inv
	sx := (nx*0.5 + 0.5) * float32(w-1)
	sy := (1 - (ny*0.5 + 0.5)) * float32(h-1)
	return screenPoint{x: int(sx + 0.5), y: int(sy + 0.5), z: nz, ok: true}
}

func lightIntensity(l Light, n Vec3) float32 {
	amb := Clamp01(l.Ambient)
	dir := Clamp01(l.DirAmount)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	d := Dot(n, ld.Mul(-1))
	if d < 0 {
		d = 0
	}
	return Clamp01(amb + d*dir)
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	idx := y*w + x
	if x < 0 || x >= w || idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]; store [0,1].
	d := Clamp01(z*0.5 + 0.5)
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillTriangle rasterizes a flat triangle. Front faces have positive screen
// area; back faces are dropped when culling and flipped otherwise.
func (r *Renderer) fillTriangle(t Target, w, h int, p0, p1, p2 screenPoint, c Color) {
	a := area(p0, p1, p2)
	if a == 0 {
		return
	}
	if a < 0 {
		if r.Cull {
			return
		}
		p1, p2 = p2, p1
		a = -a
	}

	minX, maxX := max(min(p0.x, p1.x, p2.x), 0), min(max(p0.x, p1.x, p2.x), w-1)
	minY, maxY := max(min(p0.y, p1.y, p2.y), 0), min(max(p0.y, p1.y, p2.y), h-1)
	if minX > maxX || minY > maxY {
		return
	}

	invArea := 1 / float32(a)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(p1.x, p1.y, p2.x, p2.y, x, y)
			w1 := edgeFn(p2.x, p2.y, p0.x, p0.y, x, y)
			w2 := edgeFn(p0.x, p0.y, p1.x, p1.y, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			z := (float32(w0)*p0.z + float32(w1)*p1.z + float32(w2)*p2.z) * invArea
			if !r.depthTest(w, x, y, z) {
				continue
			}
			t.SetPixel(x, y, c)
		}
	}
}

func area(p0, p1, p2 screenPoint) int {
	return edgeFn(p0.x, p0.y, p1.x, p1.y, p2.x, p2.y)
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
