package game

import "testing"

func TestHSVToRGBAchromatic(t *testing.T) {
	for h := 0; h < 256; h += 17 {
		for v := 0; v < 256; v += 5 {
			got := HSVToRGB(HSV{H: uint8(h), S: 0, V: uint8(v)})
			want := RGB{R: uint8(v), G: uint8(v), B: uint8(v)}
			if got != want {
				t.Fatalf("HSVToRGB(%d,0,%d) = %v, want %v", h, v, got, want)
			}
		}
	}
}

func TestHSVToRGBRegionBoundaries(t *testing.T) {
	cases := []struct {
		h    uint8
		want RGB
	}{
		{0, RGB{255, 0, 0}},
		{43, RGB{254, 255, 0}},
		{86, RGB{0, 255, 0}},
		{129, RGB{0, 254, 255}},
		{172, RGB{0, 0, 255}},
		{215, RGB{255, 0, 254}},
		{255, RGB{255, 0, 15}},
	}
	for _, tc := range cases {
		got := HSVToRGB(HSV{H: tc.h, S: 255, V: 255})
		if got != tc.want {
			t.Fatalf("HSVToRGB(%d,255,255) = %v, want %v", tc.h, got, tc.want)
		}
	}
}

func TestHSVToRGBDeterministic(t *testing.T) {
	for h := 0; h < 256; h++ {
		for s := 1; s < 256; s += 3 {
			in := HSV{H: uint8(h), S: uint8(s), V: 200}
			a, b := HSVToRGB(in), HSVToRGB(in)
			if a != b {
				t.Fatalf("HSVToRGB(%v) not deterministic: %v vs %v", in, a, b)
			}
		}
	}
}

func TestRGBPack(t *testing.T) {
	if got := (RGB{R: 0x12, G: 0x34, B: 0x56}).Pack(); got != 0x123456 {
		t.Fatalf("Pack() = %#x, want 0x123456", got)
	}
	if got := (RGB{R: 1, G: 2, B: 3}).RGBA(); got.A != 0xFF || got.R != 1 || got.B != 3 {
		t.Fatalf("RGBA() = %v", got)
	}
}
