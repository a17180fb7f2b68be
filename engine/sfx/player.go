package sfx

import (
	"context"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Sink accepts mono 16-bit samples. WriteSample may block while the sink's
// buffer is full.
type Sink interface {
	WriteSample(sample int16)
}

const blockSamples = 512

// Player mixes sounds from a Bank into a Sink.
//
// Play is called from the game loop and never blocks. Everything else runs on
// the pump goroutine started by Run.
type Player struct {
	bank *Bank
	sink Sink

	queue   cueQueue
	dropped atomic.Uint32

	mu     sync.Mutex
	mixer  beep.Mixer
	out    *effects.Volume
	music  *beep.Ctrl
	block  [][2]float64
	closed bool
}

// NewPlayer returns a player with master volume vol in 0..1.
func NewPlayer(bank *Bank, sink Sink, vol float64) *Player {
	p := &Player{
		bank:  bank,
		sink:  sink,
		block: make([][2]float64, blockSamples),
	}
	p.out = &effects.Volume{Streamer: &p.mixer, Base: 2}
	p.setVolume(vol)
	return p
}

// Play queues s. Music starts a loop that plays until StopMusic; starting it
// twice has no effect. A full queue drops the cue and returns false.
func (p *Player) Play(s Sound) bool {
	if p == nil {
		return false
	}
	if !p.queue.TrySend(s) {
		p.dropped.Add(1)
		return false
	}
	return true
}

// Dropped returns the number of cues lost to a full queue.
func (p *Player) Dropped() uint32 { return p.dropped.Load() }

func (p *Player) SetVolume(vol float64) {
	p.mu.Lock()
	p.setVolume(vol)
	p.mu.Unlock()
}

func (p *Player) setVolume(vol float64) {
	if vol <= 0 {
		p.out.Silent = true
		return
	}
	p.out.Silent = false
	p.out.Volume = math.Log2(math.Min(vol, 1))
}

// StopMusic pauses the music loop.
func (p *Player) StopMusic() {
	p.mu.Lock()
	if p.music != nil {
		p.music.Paused = true
	}
	p.mu.Unlock()
}

// Fill applies queued cues and mixes the next len(samples) stereo frames.
// Silence is written when nothing is playing.
func (p *Player) Fill(samples [][2]float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for {
		s, ok := p.queue.TryRecv()
		if !ok {
			break
		}
		p.start(s)
	}

	n, _ := p.out.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
}

func (p *Player) start(s Sound) {
	src, err := p.bank.Streamer(s)
	if err != nil {
		return
	}
	if s != SoundMusic {
		p.mixer.Add(src)
		return
	}
	if p.music != nil {
		p.music.Paused = false
		return
	}
	p.music = &beep.Ctrl{Streamer: beep.Loop(-1, src)}
	p.mixer.Add(p.music)
}

// Run pumps mixed audio into the sink until ctx is done or Close is called.
func (p *Player) Run(ctx context.Context) {
	for ctx.Err() == nil {
		p.mu.Lock()
		closed := p.closed
		p.mu.Unlock()
		if closed {
			return
		}

		p.Fill(p.block)
		for _, f := range p.block {
			p.sink.WriteSample(toPCM16((f[0] + f[1]) / 2))
		}
	}
}

// Close stops the pump after its current block.
func (p *Player) Close() {
	p.mu.Lock()
	p.closed = true
	p.mixer.Clear()
	p.mu.Unlock()
}

func toPCM16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}
