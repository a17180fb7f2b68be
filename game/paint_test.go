package game

import "testing"

func TestPolygonHueSixFaces(t *testing.T) {
	want := []uint8{100, 164, 36, 164, 36, 164}
	for i, w := range want {
		if got := PolygonHue(100, i); got != w {
			t.Fatalf("PolygonHue(100, %d) = %d, want %d", i, got, w)
		}
	}
}

func TestPolygonHueWraps(t *testing.T) {
	if got := PolygonHue(200, 1); got != 8 {
		t.Fatalf("PolygonHue(200, 1) = %d, want 8", got)
	}
	if got := PolygonHue(10, 2); got != 202 {
		t.Fatalf("PolygonHue(10, 2) = %d, want 202", got)
	}
	if got := PolygonHue(10, 6); got != 10 {
		t.Fatalf("PolygonHue(10, 6) = %d, want 10", got)
	}
}

func TestColorPolygons(t *testing.T) {
	master := HSV{H: 100, S: 255, V: 255}
	dst := make([]RGB, 6)
	ColorPolygons(dst, master)
	for i, c := range dst {
		want := HSVToRGB(HSV{H: PolygonHue(100, i), S: 255, V: 255})
		if c != want {
			t.Fatalf("polygon %d = %v, want %v", i, c, want)
		}
	}
	if dst[1] != dst[3] || dst[2] != dst[4] {
		t.Fatalf("polygons sharing a hue differ: %v", dst)
	}
}
