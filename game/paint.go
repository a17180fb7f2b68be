package game

// PolygonHue returns the hue of polygon i for a given master hue.
// Odd polygons are shifted forward a quarter turn. Even polygons that are not
// multiples of three are shifted back, so indices 0, 6, 12... keep the master hue.
func PolygonHue(master uint8, i int) uint8 {
	h := master
	if i%2 != 0 {
		h += 64
	} else if i%3 != 0 {
		h -= 64
	}
	return h
}

// ColorPolygons fills dst with one flat color per polygon.
func ColorPolygons(dst []RGB, master HSV) {
	c := master
	for i := range dst {
		c.H = PolygonHue(master.H, i)
		dst[i] = HSVToRGB(c)
	}
}
