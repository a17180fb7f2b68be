package sfx

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

const testRate = 22050

func TestQueueFullAndOrder(t *testing.T) {
	var q cueQueue
	if _, ok := q.TryRecv(); ok {
		t.Fatalf("TryRecv() ok = true on empty queue")
	}
	for i := 0; i < queueSlots; i++ {
		if !q.TrySend(Sound(i % 3)) {
			t.Fatalf("TrySend() = false at slot %d", i)
		}
	}
	if q.TrySend(SoundScore) {
		t.Fatalf("TrySend() = true on full queue")
	}
	for i := 0; i < queueSlots; i++ {
		s, ok := q.TryRecv()
		if !ok || s != Sound(i%3) {
			t.Fatalf("TryRecv() = %v %v at %d, want %v", s, ok, i, Sound(i%3))
		}
	}
}

func newTestBank(t *testing.T) *Bank {
	t.Helper()
	b, err := LoadBank(BankConfig{SampleRate: testRate})
	if err != nil {
		t.Fatalf("LoadBank() error = %v", err)
	}
	return b
}

func TestSynthBankLengths(t *testing.T) {
	b := newTestBank(t)
	sr := beep.SampleRate(testRate)
	if got, want := b.Len(SoundScore), sr.N(70*time.Millisecond)+sr.N(180*time.Millisecond); got != want {
		t.Fatalf("score length = %d, want %d", got, want)
	}
	if got, want := b.Len(SoundMusic), sr.N(16*beat); got != want {
		t.Fatalf("music length = %d, want %d", got, want)
	}
	if b.Len(SoundStart) == 0 {
		t.Fatalf("start sound empty")
	}
	if _, err := b.Streamer(soundCount); !errors.Is(err, ErrNoSound) {
		t.Fatalf("Streamer(out of range) error = %v, want ErrNoSound", err)
	}
}

func TestSynthInRange(t *testing.T) {
	b := newTestBank(t)
	s, _ := b.Streamer(SoundMusic)
	buf := make([][2]float64, 1024)
	for {
		n, ok := s.Stream(buf)
		for _, f := range buf[:n] {
			if f[0] < -1 || f[0] > 1 || f[1] < -1 || f[1] > 1 {
				t.Fatalf("sample %v out of range", f)
			}
		}
		if !ok {
			break
		}
	}
}

func loud(samples [][2]float64) bool {
	for _, f := range samples {
		if f[0] != 0 || f[1] != 0 {
			return true
		}
	}
	return false
}

func TestPlayerOneShotThenSilence(t *testing.T) {
	b := newTestBank(t)
	p := NewPlayer(b, nil, 1)

	buf := make([][2]float64, 256)
	p.Fill(buf)
	if loud(buf) {
		t.Fatalf("idle player produced sound")
	}

	if !p.Play(SoundScore) {
		t.Fatalf("Play() = false")
	}
	long := make([][2]float64, b.Len(SoundScore))
	p.Fill(long)
	if !loud(long) {
		t.Fatalf("score cue silent")
	}
	p.Fill(buf)
	if loud(buf) {
		t.Fatalf("one-shot still playing after its length")
	}
}

func TestPlayerMusicLoops(t *testing.T) {
	b := newTestBank(t)
	p := NewPlayer(b, nil, 1)
	p.Play(SoundMusic)
	p.Play(SoundMusic)

	whole := make([][2]float64, b.Len(SoundMusic))
	p.Fill(whole)
	next := make([][2]float64, 4096)
	p.Fill(next)
	if !loud(next) {
		t.Fatalf("music did not loop")
	}

	p.StopMusic()
	p.Fill(next)
	if loud(next) {
		t.Fatalf("music still playing after StopMusic")
	}
}

func TestPlayerMuted(t *testing.T) {
	b := newTestBank(t)
	p := NewPlayer(b, nil, 0)
	p.Play(SoundScore)
	buf := make([][2]float64, 512)
	p.Fill(buf)
	if loud(buf) {
		t.Fatalf("muted player produced sound")
	}
}

func TestPlayerDropsWhenFull(t *testing.T) {
	p := NewPlayer(newTestBank(t), nil, 1)
	for i := 0; i < queueSlots; i++ {
		p.Play(SoundScore)
	}
	if p.Play(SoundScore) {
		t.Fatalf("Play() = true on full queue")
	}
	if p.Dropped() != 1 {
		t.Fatalf("Dropped() = %d, want 1", p.Dropped())
	}
}

type countingSink struct {
	n      int
	limit  int
	cancel context.CancelFunc
}

func (s *countingSink) WriteSample(int16) {
	s.n++
	if s.n == s.limit {
		s.cancel()
	}
}

func TestRunFeedsSink(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sink := &countingSink{limit: 3 * blockSamples, cancel: cancel}
	p := NewPlayer(newTestBank(t), sink, 1)
	p.Play(SoundScore)
	p.Run(ctx)
	if sink.n != 3*blockSamples {
		t.Fatalf("sink got %d samples, want %d", sink.n, 3*blockSamples)
	}
}

func TestToPCM16Clamps(t *testing.T) {
	if toPCM16(2) != 32767 || toPCM16(-2) != -32767 || toPCM16(0) != 0 {
		t.Fatalf("toPCM16 clamp mismatch")
	}
}

func TestLoadBankWAVResamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	src := beep.SampleRate(testRate / 2)
	tone, err := generators.SineTone(src, 440)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: src, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Take(src.N(200*time.Millisecond), tone), format); err != nil {
		t.Fatalf("wav.Encode() error = %v", err)
	}
	f.Close()

	b, err := LoadBank(BankConfig{SampleRate: testRate, Files: [soundCount]string{SoundScore: path}})
	if err != nil {
		t.Fatalf("LoadBank() error = %v", err)
	}
	want := beep.SampleRate(testRate).N(200 * time.Millisecond)
	if got := b.Len(SoundScore); got < want-32 || got > want+32 {
		t.Fatalf("resampled length = %d, want about %d", got, want)
	}
}

func TestLoadBankMissingFile(t *testing.T) {
	_, err := LoadBank(BankConfig{
		SampleRate: testRate,
		Files:      [soundCount]string{SoundMusic: "missing.wav"},
		Open: func(string) (io.ReadCloser, error) {
			return nil, os.ErrNotExist
		},
	})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("LoadBank() error = %v, want ErrNotExist", err)
	}
}

func TestLoadBankBadRate(t *testing.T) {
	if _, err := LoadBank(BankConfig{}); err == nil {
		t.Fatalf("LoadBank() with zero rate succeeded")
	}
}

func TestParseSound(t *testing.T) {
	for _, s := range Sounds {
		got, err := ParseSound(s.String())
		if err != nil || got != s {
			t.Fatalf("ParseSound(%q) = %v, %v, want %v", s.String(), got, err, s)
		}
	}
	if _, err := ParseSound("boom"); !errors.Is(err, ErrNoSound) {
		t.Fatalf("ParseSound(boom) error = %v, want ErrNoSound", err)
	}
}

func TestWriteWAVRoundTrip(t *testing.T) {
	b := newTestBank(t)
	path := filepath.Join(t.TempDir(), "score.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.WriteWAV(f, SoundScore); err != nil {
		t.Fatalf("WriteWAV() error = %v", err)
	}
	f.Close()

	again, err := LoadBank(BankConfig{SampleRate: testRate, Files: [soundCount]string{SoundScore: path}})
	if err != nil {
		t.Fatalf("LoadBank() error = %v", err)
	}
	if got, want := again.Len(SoundScore), b.Len(SoundScore); got != want {
		t.Fatalf("round-trip length = %d, want %d", got, want)
	}
}
