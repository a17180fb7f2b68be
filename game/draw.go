package game

import "strconv"

// Text positions and scales, in pixels on a 320x240 screen.
const (
	TextScale  = 0.9
	StartScale = 1.9
)

var (
	titleText = Text{X: 24, Y: 24, Scale: TextScale, S: "SIIKASAURUS"}
	speedText = Text{X: 24, Y: 200, Scale: TextScale, S: "CHANGE SPEED WITH L/R"}
	startText = Text{X: 64, Y: 150, Scale: StartScale, S: "PRESS START"}
)

// Draw advances the hues and rotation and describes the frame to render.
func (g *Game) Draw() *Frame {
	f := &g.frame

	g.rot.AngleX -= 0.1 * g.rot.MultX
	g.rot.AngleY += 0.066 * g.rot.MultY
	f.AngleX = g.rot.AngleX
	f.AngleY = g.rot.AngleY

	g.hue.H++
	f.Models = f.Models[:0]
	g.addModel(ModelBase)
	if g.started {
		t := g.target
		if t.Direction >= DirUp && t.Direction <= DirLeft {
			g.addModel(ModelUp + Model(t.Direction-DirUp))
		}
		for _, b := range [...]struct {
			v int8
			m Model
		}{{t.A, ModelA}, {t.B, ModelB}, {t.C, ModelC}, {t.X, ModelX}, {t.Y, ModelY}, {t.Z, ModelZ}} {
			if b.v != 0 {
				g.addModel(b.m)
			}
		}
	}

	g.bgHue.H++
	f.Background = HSVToRGB(g.bgHue)

	f.Texts = append(f.Texts[:0], titleText, speedText)
	if g.started {
		g.addScores()
	} else {
		f.Texts = append(f.Texts, startText)
	}
	if g.opts.Debug {
		g.addDebug()
	}

	f.Events = g.events
	f.Started = g.started
	return f
}

func (g *Game) addModel(m Model) {
	c := g.colors[m]
	ColorPolygons(c, g.hue)
	g.frame.Models = append(g.frame.Models, ModelDraw{Model: m, Colors: c})
}

// addScores lays out one label per present device. With a multitap the first
// six slots sit in a left column and the rest in a right column. With two
// plain pads slot 0 is P1 and the other is P2.
func (g *Game) addScores() {
	f := &g.frame
	for i := 0; i < MaxDevices; i++ {
		if !g.present[i] {
			continue
		}
		var x, y, n int
		switch {
		case !g.multitap:
			x, n = 24, 2
			y = 64
			if i == 0 {
				n, y = 1, 48
			}
		case i < 6:
			x, y, n = 24, 48+16*i, i+1
		default:
			x, y, n = 240, 48+16*i-96, i+1
		}
		f.Texts = append(f.Texts, Text{X: x, Y: y, Scale: TextScale, S: g.label(i, n)})
	}
}

// label caches "P<n>:<score>" so a steady score costs no allocation.
func (g *Game) label(i, n int) string {
	s := g.scores[i]
	l := g.labels[i]
	if l == "" || g.labelScore[i] != s || g.labelNum[i] != n {
		l = "P" + strconv.Itoa(n) + ":" + strconv.FormatUint(uint64(s), 10)
		g.labels[i] = l
		g.labelScore[i] = s
		g.labelNum[i] = n
	}
	return l
}

// addDebug prints the target on row 27 and every snapshot below it, one
// digit per field on an 8 pixel grid. A -1 prints as 255.
func (g *Game) addDebug() {
	f := &g.frame
	f.Texts = append(f.Texts, Text{X: 8, Y: 27 * 8, Scale: 1, S: "T " + digits(g.target)})
	row := 2
	for i := 0; i < MaxDevices; i++ {
		if !g.present[i] {
			continue
		}
		f.Texts = append(f.Texts, Text{
			X: 26 * 8, Y: row * 8, Scale: 1,
			S: strconv.Itoa(i+1) + " " + digits(g.players[i]),
		})
		row++
	}
}

func digits(b ButtonState) string {
	buf := make([]byte, 0, 32)
	for i, v := range [...]int8{int8(b.Direction), b.A, b.B, b.C, b.X, b.Y, b.Z} {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendUint(buf, uint64(uint8(v)), 10)
	}
	return string(buf)
}
