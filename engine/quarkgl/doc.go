// Package quarkgl is a small software 3D renderer for flat-shaded polygon models.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Clipping → Rasterization → Target.
//
// Meshes are lists of triangles and quads, each polygon carrying its own flat
// color so callers can recolor a model every frame without touching vertices.
// The renderer draws into a caller-provided Target and keeps its scratch
// buffers between frames, so the render hot path does not allocate.
package quarkgl
