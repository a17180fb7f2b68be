package hal

import "testing"

func TestRGB565RoundTrip(t *testing.T) {
	tests := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
	}
	for _, tt := range tests {
		r, g, b := rgb888From565(rgb565(tt.r, tt.g, tt.b))
		if r != tt.r || g != tt.g || b != tt.b {
			t.Fatalf("rgb888From565(rgb565(%d,%d,%d)) = %d,%d,%d", tt.r, tt.g, tt.b, r, g, b)
		}
	}
}

func TestExpandRGB565(t *testing.T) {
	src := make([]byte, 4)
	fillRGB565(src, 255, 0, 0)
	dst := make([]byte, 8)
	expandRGB565(dst, src)
	want := []byte{255, 0, 0, 255, 255, 0, 0, 255}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("expandRGB565() = %v, want %v", dst, want)
		}
	}
}
