// Package sfx synthesizes, decodes, and mixes the game's sounds and feeds
// them to a mono sample sink.
package sfx

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Sound names one entry of a Bank.
type Sound uint8

const (
	SoundScore Sound = iota
	SoundStart
	SoundMusic
	soundCount
)

func (s Sound) String() string {
	switch s {
	case SoundScore:
		return "score"
	case SoundStart:
		return "start"
	case SoundMusic:
		return "music"
	default:
		return "sound?"
	}
}

// ErrNoSound is returned for a Sound outside the bank.
var ErrNoSound = errors.New("sfx: no such sound")

// BankConfig selects where every sound comes from. An empty file name uses
// the built-in synthesized sound.
type BankConfig struct {
	SampleRate int
	Files      [soundCount]string

	// Open reads sound files. Nil means os.Open.
	Open func(name string) (io.ReadCloser, error)
}

// Bank holds every sound fully decoded at one sample rate.
type Bank struct {
	format beep.Format
	bufs   [soundCount]*beep.Buffer
}

// LoadBank decodes or synthesizes every sound.
func LoadBank(cfg BankConfig) (*Bank, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sfx: invalid sample rate %d", cfg.SampleRate)
	}
	if cfg.Open == nil {
		cfg.Open = func(name string) (io.ReadCloser, error) { return os.Open(name) }
	}
	b := &Bank{
		format: beep.Format{
			SampleRate:  beep.SampleRate(cfg.SampleRate),
			NumChannels: 2,
			Precision:   2,
		},
	}
	for s := Sound(0); s < soundCount; s++ {
		var err error
		if name := cfg.Files[s]; name != "" {
			err = b.loadFile(s, name, cfg.Open)
		} else {
			err = b.synth(s)
		}
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Bank) loadFile(s Sound, name string, open func(string) (io.ReadCloser, error)) error {
	f, err := open(name)
	if err != nil {
		return fmt.Errorf("sfx: %s sound: %w", s, err)
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return fmt.Errorf("sfx: decode %s: %w", name, err)
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if format.SampleRate != b.format.SampleRate {
		src = beep.Resample(4, format.SampleRate, b.format.SampleRate, stream)
	}
	b.fill(s, src)
	if err := src.Err(); err != nil {
		return fmt.Errorf("sfx: decode %s: %w", name, err)
	}
	return nil
}

func (b *Bank) synth(s Sound) error {
	sr := b.format.SampleRate
	var (
		src beep.Streamer
		err error
	)
	switch s {
	case SoundMusic:
		src, err = tune(sr)
	default:
		src, err = chime(sr)
	}
	if err != nil {
		return err
	}
	b.fill(s, src)
	return nil
}

func (b *Bank) fill(s Sound, src beep.Streamer) {
	buf := beep.NewBuffer(b.format)
	buf.Append(src)
	b.bufs[s] = buf
}

// SampleRate is the rate every sound was decoded at.
func (b *Bank) SampleRate() beep.SampleRate { return b.format.SampleRate }

// Len returns the length of s in samples.
func (b *Bank) Len(s Sound) int {
	if s >= soundCount || b.bufs[s] == nil {
		return 0
	}
	return b.bufs[s].Len()
}

// Streamer returns a fresh stream over the whole of s.
func (b *Bank) Streamer(s Sound) (beep.StreamSeeker, error) {
	if s >= soundCount || b.bufs[s] == nil {
		return nil, ErrNoSound
	}
	buf := b.bufs[s]
	return buf.Streamer(0, buf.Len()), nil
}

// Sounds lists every entry of a Bank in order.
var Sounds = [soundCount]Sound{SoundScore, SoundStart, SoundMusic}

// ParseSound maps a name printed by Sound.String back to its Sound.
func ParseSound(name string) (Sound, error) {
	for _, s := range Sounds {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrNoSound, name)
}

// WriteWAV encodes s as a 16-bit stereo WAV file at the bank's rate.
func (b *Bank) WriteWAV(w io.WriteSeeker, s Sound) error {
	src, err := b.Streamer(s)
	if err != nil {
		return err
	}
	if err := wav.Encode(w, src, b.format); err != nil {
		return fmt.Errorf("sfx: encode %s: %w", s, err)
	}
	return nil
}
