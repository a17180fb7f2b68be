package app

import (
	"errors"

	"siikasaurus/engine/quarkgl"
	"siikasaurus/engine/text"
	"siikasaurus/game"
	"siikasaurus/hal"
	"siikasaurus/models"
)

// stage turns game frames into pixels.
type stage struct {
	fb     hal.Framebuffer
	target quarkgl.RGB565Target
	scene  *quarkgl.Scene
	ids    [game.ModelCount]int
	r      *quarkgl.Renderer
	text   *text.Overlay
}

// cameraDistance keeps the whole pad in view at any rotation.
const cameraDistance = 4.5

func newStage(fb hal.Framebuffer, set *models.Set) (*stage, error) {
	if fb == nil {
		return nil, errors.New("app: no framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, errors.New("app: framebuffer is not RGB565")
	}
	s := &stage{
		fb: fb,
		target: quarkgl.RGB565Target{
			Buf:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      fb.Width(),
			H:      fb.Height(),
		},
		scene: quarkgl.CreateScene(int(game.ModelCount)),
		r:     quarkgl.NewRenderer(fb.Width(), fb.Height(), true),
	}
	s.scene.Camera.Position = quarkgl.V3(0, 0, cameraDistance)
	for m := range set {
		s.ids[m] = s.scene.AddMesh(set[m])
		if s.ids[m] < 0 {
			return nil, errors.New("app: scene full")
		}
	}
	s.scene.DisableAll()
	s.text = text.New(&s.target)
	return s, nil
}

// transform is the model matrix for f. Angles are radians; the Y rotation
// reaches the vertices first.
func transform(f *game.Frame) quarkgl.Mat4 {
	return quarkgl.Mat4Mul(
		quarkgl.Mat4RotateX(f.AngleX),
		quarkgl.Mat4RotateY(f.AngleY),
	)
}

// present renders f and pushes it to the display.
func (s *stage) present(f *game.Frame) error {
	s.scene.DisableAll()
	xf := transform(f)
	for _, md := range f.Models {
		id := s.ids[md.Model]
		m := s.scene.Mesh(id)
		if m == nil {
			continue
		}
		for i, c := range md.Colors {
			m.SetPolygonColor(i, quarkgl.Packed(c.Pack()))
		}
		s.scene.UpdateMeshTransform(id, xf)
		s.scene.SetMeshEnabled(id, true)
	}

	s.r.ClearColor = quarkgl.Packed(f.Background.Pack())
	s.r.Render(&s.target, s.scene)

	for _, t := range f.Texts {
		s.text.Print(t.X, t.Y, t.Scale, t.S)
	}
	return s.fb.Present()
}
