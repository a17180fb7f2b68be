//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"siikasaurus/app"
	"siikasaurus/config"
	"siikasaurus/hal"
	"siikasaurus/internal/buildinfo"
)

func main() {
	var (
		cfgPath     string
		headless    bool
		hz          int
		ticks       uint64
		seed        int64
		autoplay    bool
		mute        bool
		debug       bool
		printConfig bool
		version     bool
	)
	flag.StringVar(&cfgPath, "config", "siikasaurus.toml", "Settings file (missing file = defaults).")
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Int64Var(&seed, "seed", 0, "Target random seed (overrides game.seed).")
	flag.BoolVar(&autoplay, "autoplay", false, "Let a bot play slot 1 (headless only).")
	flag.BoolVar(&mute, "mute", false, "Disable audio.")
	flag.BoolVar(&debug, "debug", false, "Show the target and pad digits.")
	flag.BoolVar(&printConfig, "print-config", false, "Print the effective settings and exit.")
	flag.BoolVar(&version, "version", false, "Print the build and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Line())
		return
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Game.Seed = seed
		case "debug":
			cfg.Game.DebugOverlay = debug
		}
	})
	if autoplay {
		cfg.Game.WinnableTargets = true
	}
	if printConfig {
		if err := cfg.Write(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	opts := app.Options{Config: cfg, Mute: mute}
	host := hal.HostConfig{
		Width:        cfg.Display.Width,
		Height:       cfg.Display.Height,
		Slots:        cfg.Game.MaxDevices,
		KeyboardSlot: cfg.Input.KeyboardSlot,
		Deadzone:     cfg.Input.Deadzone,
		Audio:        cfg.Audio.Enabled && !mute,
	}

	var a *app.App
	newApp := func(h hal.HAL) func() error {
		var err error
		a, err = app.New(h, opts)
		if err != nil {
			return func() error { return err }
		}
		return a.Step
	}

	if headless {
		if autoplay {
			opts.Autoplay = true
			opts.Pads = hal.NewVirtualPads(cfg.Game.MaxDevices)
		}
		opts.HaltOnPanic = true
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
			Host:  host,
			Hz:    hz,
			Ticks: ticks,
			Pads:  opts.Pads,
		})
	} else {
		err = hal.RunWindow(newApp, hal.WindowConfig{
			Host:  host,
			Title: cfg.Display.Title + " (" + buildinfo.Short() + ")",
			Scale: cfg.Display.Scale,
			TPS:   cfg.Display.TPS,
		})
	}
	if a != nil {
		a.Close()
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
