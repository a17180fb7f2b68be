package game

import "siikasaurus/pad"

// Update runs the match evaluator for one frame.
//
// Devices are scanned in slot order. Each one first adjusts the rotation
// speed, then either starts the game on a START edge or, once started, has
// its snapshot compared with the target. A start or a match ends the scan for
// the frame. While idle the target is redrawn after every scan.
func (g *Game) Update(in Input) {
	g.events = g.events[:0]
	g.notePresent(in.Slots)

	for _, s := range in.Slots {
		i := s.Index
		if i < 0 || i >= MaxDevices {
			continue
		}

		if s.Held.Has(pad.R) {
			g.rot.MultX += g.opts.RotationStep
			g.rot.MultY += g.opts.RotationStep
		} else if s.Held.Has(pad.L) {
			g.rot.MultX -= g.opts.RotationStep
			g.rot.MultY -= g.opts.RotationStep
		}

		if !g.started {
			if s.Pressed.Has(pad.Start) {
				g.started = true
				g.events = append(g.events, Event{Cue: CueStart, Slot: i})
				return
			}
			continue
		}

		g.players[i] = Snapshot(s.Held)
		if g.players[i].Equal(g.target) {
			g.scores[i]++
			g.events = append(g.events, Event{Cue: CueScore, Slot: i, Score: g.scores[i]})
			g.target = g.randomize()
			return
		}
	}

	if !g.started {
		g.target = g.randomize()
	}
}

func (g *Game) notePresent(slots []pad.Slot) {
	g.present = [MaxDevices]bool{}
	g.nPresent = 0
	for _, s := range slots {
		if s.Index < 0 || s.Index >= MaxDevices || g.present[s.Index] {
			continue
		}
		g.present[s.Index] = true
		g.nPresent++
	}
	g.multitap = !(g.present[0] && g.present[6] && g.nPresent == 2)
}
