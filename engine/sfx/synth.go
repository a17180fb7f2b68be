package sfx

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, sr beep.SampleRate, d, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: beep.Take(sr.N(d), s),
		attack:   sr.N(attack),
		release:  sr.N(release),
		total:    sr.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type wave uint8

const (
	waveSine wave = iota
	waveSquare
)

func tone(sr beep.SampleRate, w wave, freq float64, d time.Duration) (beep.Streamer, error) {
	var (
		s   beep.Streamer
		err error
	)
	switch w {
	case waveSquare:
		s, err = generators.SquareTone(sr, freq)
	default:
		s, err = generators.SineTone(sr, freq)
	}
	if err != nil {
		return nil, fmt.Errorf("sfx: %.1f Hz tone: %w", freq, err)
	}
	return newEnvelope(s, sr, d, 5*time.Millisecond, d/2), nil
}

type note struct {
	freq float64 // 0 is a rest
	d    time.Duration
}

func phrase(sr beep.SampleRate, w wave, notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(sr.N(n.d)))
			continue
		}
		s, err := tone(sr, w, n.freq, n.d)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	return beep.Seq(parts...), nil
}

// chime is the two-note square jingle played on a score.
func chime(sr beep.SampleRate) (beep.Streamer, error) {
	s, err := phrase(sr, waveSquare, []note{
		{987.77, 70 * time.Millisecond},
		{1318.51, 180 * time.Millisecond},
	})
	if err != nil {
		return nil, err
	}
	return withVolume(s, 0.35), nil
}

const beat = 150 * time.Millisecond

// tune is a short pentatonic loop with a square bass under a sine lead.
func tune(sr beep.SampleRate) (beep.Streamer, error) {
	lead := []note{
		{523.25, beat}, {659.25, beat}, {783.99, beat}, {659.25, beat},
		{880.00, beat}, {783.99, beat}, {659.25, beat}, {0, beat},
		{587.33, beat}, {698.46, beat}, {880.00, beat}, {698.46, beat},
		{783.99, 2 * beat}, {0, 2 * beat},
	}
	bass := []note{
		{130.81, 4 * beat}, {174.61, 4 * beat},
		{146.83, 4 * beat}, {196.00, 4 * beat},
	}
	l, err := phrase(sr, waveSine, lead)
	if err != nil {
		return nil, err
	}
	b, err := phrase(sr, waveSquare, bass)
	if err != nil {
		return nil, err
	}
	return beep.Mix(withVolume(l, 0.3), withVolume(b, 0.12)), nil
}
