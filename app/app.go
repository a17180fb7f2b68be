// Package app wires a machine to the game: it builds the scene, starts the
// audio pump, and registers the per-frame tasks.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"siikasaurus/config"
	"siikasaurus/engine/loop"
	"siikasaurus/engine/sfx"
	"siikasaurus/game"
	"siikasaurus/hal"
	"siikasaurus/internal/buildinfo"
	"siikasaurus/models"
	"siikasaurus/pad"
)

// ErrPanicked is returned by Step once a frame task has panicked and the
// app was built with HaltOnPanic.
var ErrPanicked = errors.New("app: frame task panicked")

// Options selects the run mode on top of the config file.
type Options struct {
	Config config.Config

	// Autoplay drives slot 0 of Pads with a bot.
	Autoplay bool
	Pads     *hal.VirtualPads

	Mute        bool
	HaltOnPanic bool
}

// App is one running session.
type App struct {
	h    hal.HAL
	opts Options
	log  hal.Logger

	game   *game.Game
	loop   *loop.Loop
	stage  *stage
	pads   hal.Gamepads
	slots  []pad.Slot
	sound  *soundOut
	closed bool

	presentErr bool
}

// New builds the session for h. The returned App has not run a frame yet.
func New(h hal.HAL, opts Options) (*App, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &App{
		h:     h,
		opts:  opts,
		log:   h.Logger(),
		loop:  loop.New(),
		slots: make([]pad.Slot, 0, game.MaxDevices),
	}
	a.logf("boot: siikasaurus %s", buildinfo.Short())

	var in hal.Input
	if in = h.Input(); in == nil || in.Gamepads() == nil {
		return nil, fmt.Errorf("app: %w: no gamepads", hal.ErrNotImplemented)
	}
	a.pads = in.Gamepads()

	disp := h.Display()
	if disp == nil {
		return nil, fmt.Errorf("app: %w: no display", hal.ErrNotImplemented)
	}
	set := models.Build()
	st, err := newStage(disp.Framebuffer(), &set)
	if err != nil {
		return nil, err
	}
	a.stage = st

	a.game = game.New(game.Options{
		Seed:               cfg.Game.Seed,
		RotationStep:       float32(cfg.Game.RotationStep),
		RotationMultiplier: float32(cfg.Game.RotationMultiplier),
		WinnableTargets:    cfg.Game.WinnableTargets,
		Debug:              cfg.Game.DebugOverlay,
		PolygonCounts:      set.PolygonCounts(),
	})

	if cfg.Audio.Enabled && !opts.Mute {
		s, err := startSound(h.Audio(), cfg.Audio)
		if err != nil {
			return nil, err
		}
		if s == nil {
			a.logf("audio: no output")
		}
		a.sound = s
	}

	installPanicHandler(a)

	if opts.Autoplay {
		if opts.Pads == nil {
			return nil, errors.New("app: autoplay needs virtual pads")
		}
		a.loop.AddTask("autoplay", newAutoplay(opts.Pads, 0, a.game))
	}
	a.loop.AddTask("gamepad", loop.TaskFunc(a.gamepadStep))
	a.loop.AddTask("draw", loop.TaskFunc(a.drawStep))

	a.logf("boot: %d slots, seed %d", cfg.Game.MaxDevices, cfg.Game.Seed)
	return a, nil
}

// Game exposes the session state.
func (a *App) Game() *game.Game { return a.game }

// Frames returns the number of completed frames.
func (a *App) Frames() uint64 { return a.loop.Frames() }

// Step runs one frame.
func (a *App) Step() error {
	if a.loop.Frame() {
		return nil
	}
	if a.opts.HaltOnPanic && a.loop.InPanicMode() {
		return ErrPanicked
	}
	return nil
}

// Close stops audio and logs the final scores. It is safe to call twice.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.sound.close()
	a.logScores()
}

func (a *App) gamepadStep(*loop.Context) {
	a.slots = a.pads.Poll(a.slots[:0])
	for i := range a.slots {
		if a.slots[i].Index >= a.opts.Config.Game.MaxDevices {
			a.slots = a.slots[:i]
			break
		}
	}
	a.game.Update(game.Input{Slots: a.slots})

	for _, ev := range a.game.Events() {
		switch ev.Cue {
		case game.CueStart:
			a.logf("game: started by P%d", ev.Slot+1)
			a.sound.play(sfx.SoundStart)
			a.sound.play(sfx.SoundMusic)
		case game.CueScore:
			a.logf("game: P%d scored (%d)", ev.Slot+1, ev.Score)
			a.sound.play(sfx.SoundScore)
		}
	}
}

func (a *App) drawStep(*loop.Context) {
	if err := a.stage.present(a.game.Draw()); err != nil && !a.presentErr {
		a.presentErr = true
		a.logf("display: %v", err)
	}
}

func (a *App) logScores() {
	if !a.game.Started() {
		a.logf("game: never started (%d frames)", a.loop.Frames())
		return
	}
	scores := a.game.Scores()
	for i, s := range scores {
		if s > 0 {
			a.logf("score: P%d %d", i+1, s)
		}
	}
	a.logf("game: %d frames", a.loop.Frames())
}

func (a *App) logf(format string, args ...any) {
	if a.log != nil {
		a.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}

// soundOut owns the audio pump. A nil soundOut plays nothing.
type soundOut struct {
	pwm    hal.PWMAudio
	player *sfx.Player
	cancel context.CancelFunc
}

func startSound(au hal.Audio, cfg config.Audio) (*soundOut, error) {
	if au == nil {
		return nil, nil
	}
	pwm := au.PWM()
	if pwm == nil {
		return nil, nil
	}

	var files [len(sfx.Sounds)]string
	files[sfx.SoundScore] = cfg.ScoreSound
	files[sfx.SoundStart] = cfg.StartSound
	files[sfx.SoundMusic] = cfg.Music
	bank, err := sfx.LoadBank(sfx.BankConfig{SampleRate: cfg.SampleRate, Files: files})
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	if err := pwm.Start(uint32(cfg.SampleRate)); err != nil {
		return nil, fmt.Errorf("app: audio: %w", err)
	}
	pwm.SetVolume(255)

	ctx, cancel := context.WithCancel(context.Background())
	s := &soundOut{
		pwm:    pwm,
		player: sfx.NewPlayer(bank, pwm, cfg.Volume),
		cancel: cancel,
	}
	go s.player.Run(ctx)
	return s, nil
}

func (s *soundOut) play(snd sfx.Sound) {
	if s != nil {
		s.player.Play(snd)
	}
}

func (s *soundOut) close() {
	if s == nil {
		return
	}
	s.cancel()
	s.player.Close()
	_ = s.pwm.Stop()
}

// Run builds the session and steps it forever at the configured rate. It is
// the entry point on machines without a host event loop.
func Run(h hal.HAL, opts Options) {
	a, err := New(h, opts)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString(err.Error())
		}
		select {}
	}
	tps := opts.Config.Display.TPS
	if tps <= 0 {
		tps = 60
	}
	t := time.NewTicker(time.Second / time.Duration(tps))
	defer t.Stop()
	for range t.C {
		_ = a.Step()
	}
}
