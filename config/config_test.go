package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	c, err := Parse(`
[game]
seed = 42
winnable_targets = true

[display]
scale = 3
`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Game.Seed != 42 || !c.Game.WinnableTargets || c.Display.Scale != 3 {
		t.Fatalf("Parse() = %+v", c)
	}
	if c.Display.Width != 320 || c.Audio.SampleRate != 44100 || c.Game.RotationStep != 0.033 {
		t.Fatalf("defaults lost: %+v", c)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse("[game]\nspeed = 2\n")
	if !errors.Is(err, ErrInvalid) || !strings.Contains(err.Error(), "game.speed") {
		t.Fatalf("Parse() error = %v, want unknown game.speed", err)
	}
}

func TestParseSyntaxError(t *testing.T) {
	if _, err := Parse("[game\n"); err == nil {
		t.Fatalf("Parse() accepted malformed TOML")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	c := Default()
	c.Game.MaxDevices = 13
	c.Audio.Volume = 2
	c.Input.KeyboardSlot = 20
	err := c.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Validate() = %v, want ErrInvalid", err)
	}
	for _, want := range []string{"max_devices", "volume", "keyboard_slot"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("Validate() = %v, missing %s", err, want)
		}
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c != Default() {
		t.Fatalf("Load() = %+v, want defaults", c)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "siikasaurus.toml")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Game.Seed = 7
	want.Audio.Music = "music.wav"
	if err := want.Write(f); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	f.Close()

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Fatalf("Load() = %+v, want %+v", got, want)
	}
}
