//go:build !tinygo && cgo

package hal

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// hostAudio plays the sample stream through Ebiten's audio package.
type hostAudio struct {
	pwm *hostPWMAudio
}

func newHostAudio() hostAudio {
	return hostAudio{pwm: &hostPWMAudio{vol: 255}}
}

func (a hostAudio) PWM() PWMAudio { return a.pwm }

type hostPWMAudio struct {
	mu     sync.Mutex
	ctx    *audio.Context
	player *audio.Player
	ring   *sampleRing
	vol    uint8
}

func (a *hostPWMAudio) Start(sampleRate uint32) error {
	if sampleRate == 0 {
		return errors.New("host audio: invalid sample rate")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ctx == nil {
		a.ctx = audio.NewContext(int(sampleRate))
	} else if a.ctx.SampleRate() != int(sampleRate) {
		return errors.New("host audio: ebiten audio context sample rate is fixed")
	}
	if a.player != nil {
		_ = a.player.Close()
		a.player = nil
	}
	if a.ring != nil {
		a.ring.close()
	}

	// Roughly 100ms of buffering.
	size := min(max(int(sampleRate/10), 2048), 16384)
	a.ring = newSampleRing(size)

	p, err := a.ctx.NewPlayer(&stereoReader{ring: a.ring})
	if err != nil {
		return err
	}
	p.SetBufferSize(100 * time.Millisecond)
	p.SetVolume(float64(a.vol) / 255.0)
	p.Play()
	a.player = p
	return nil
}

func (a *hostPWMAudio) Stop() error {
	a.mu.Lock()
	p, ring := a.player, a.ring
	a.player = nil
	a.mu.Unlock()

	if ring != nil {
		ring.close()
	}
	if p != nil {
		return p.Close()
	}
	return nil
}

func (a *hostPWMAudio) SetVolume(vol uint8) {
	a.mu.Lock()
	a.vol = vol
	p := a.player
	a.mu.Unlock()

	if p != nil {
		p.SetVolume(float64(vol) / 255.0)
	}
}

func (a *hostPWMAudio) WriteSample(sample int16) {
	a.mu.Lock()
	ring := a.ring
	a.mu.Unlock()
	if ring != nil {
		ring.push(sample)
	}
}

// stereoReader duplicates each mono sample into a 16-bit little-endian
// stereo frame, the format Ebiten expects.
type stereoReader struct {
	ring *sampleRing
}

func (r *stereoReader) Read(p []byte) (int, error) {
	for i := 0; i+3 < len(p); i += 4 {
		s, ok := r.ring.pop()
		if !ok {
			return i, io.EOF
		}
		p[i+0] = byte(s)
		p[i+1] = byte(s >> 8)
		p[i+2] = byte(s)
		p[i+3] = byte(s >> 8)
	}
	return len(p), nil
}
