// Package config loads the game settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full settings tree. The zero value is not usable; start from
// Default.
type Config struct {
	Game    Game    `toml:"game"`
	Display Display `toml:"display"`
	Audio   Audio   `toml:"audio"`
	Input   Input   `toml:"input"`
}

type Game struct {
	MaxDevices         int     `toml:"max_devices"`
	Seed               int64   `toml:"seed"`
	RotationStep       float64 `toml:"rotation_step"`
	RotationMultiplier float64 `toml:"rotation_multiplier"`
	WinnableTargets    bool    `toml:"winnable_targets"`
	DebugOverlay       bool    `toml:"debug_overlay"`
}

type Display struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Scale  int    `toml:"scale"`
	TPS    int    `toml:"tps"`
	Title  string `toml:"title"`
}

type Audio struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"`
	ScoreSound string  `toml:"score_sound"`
	StartSound string  `toml:"start_sound"`
	Music      string  `toml:"music"`
}

type Input struct {
	// KeyboardSlot is the device slot the keyboard drives, or -1 for none.
	KeyboardSlot int     `toml:"keyboard_slot"`
	Deadzone     float64 `toml:"deadzone"`
}

const maxDevices = 12

func Default() Config {
	return Config{
		Game: Game{
			MaxDevices:         maxDevices,
			RotationStep:       0.033,
			RotationMultiplier: 0.6,
		},
		Display: Display{
			Width:  320,
			Height: 240,
			Scale:  2,
			TPS:    60,
			Title:  "SIIKASAURUS",
		},
		Audio: Audio{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.8,
		},
		Input: Input{
			KeyboardSlot: 0,
			Deadzone:     0.5,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := undecoded(md); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, c.Validate()
}

// Parse decodes a TOML document over the defaults.
func Parse(doc string) (Config, error) {
	c := Default()
	md, err := toml.Decode(doc, &c)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := undecoded(md); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, c.Validate()
}

func undecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	sort.Strings(names)
	return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(names, ", "))
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Game.MaxDevices < 1 || c.Game.MaxDevices > maxDevices {
		bad("game.max_devices %d not in 1..%d", c.Game.MaxDevices, maxDevices)
	}
	if c.Display.Width < 64 || c.Display.Height < 64 {
		bad("display size %dx%d below 64x64", c.Display.Width, c.Display.Height)
	}
	if c.Display.Scale < 1 || c.Display.Scale > 8 {
		bad("display.scale %d not in 1..8", c.Display.Scale)
	}
	if c.Display.TPS < 1 || c.Display.TPS > 240 {
		bad("display.tps %d not in 1..240", c.Display.TPS)
	}
	if c.Audio.SampleRate < 8000 || c.Audio.SampleRate > 96000 {
		bad("audio.sample_rate %d not in 8000..96000", c.Audio.SampleRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		bad("audio.volume %g not in 0..1", c.Audio.Volume)
	}
	if c.Input.KeyboardSlot < -1 || c.Input.KeyboardSlot >= c.Game.MaxDevices {
		bad("input.keyboard_slot %d not in -1..%d", c.Input.KeyboardSlot, c.Game.MaxDevices-1)
	}
	if c.Input.Deadzone < 0 || c.Input.Deadzone >= 1 {
		bad("input.deadzone %g not in 0..1", c.Input.Deadzone)
	}
	return errors.Join(errs...)
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
