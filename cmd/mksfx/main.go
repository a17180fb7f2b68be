// mksfx renders the game's sound bank to WAV files, so the built-in sounds
// can be edited and loaded back through the audio settings.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"siikasaurus/config"
	"siikasaurus/engine/sfx"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "Settings file; its sound files replace the built-in ones.")
		outDir  = flag.String("out", ".", "Output directory.")
		sound   = flag.String("sound", "all", "score|start|music|all.")
		rate    = flag.Int("rate", 0, "Sample rate (0 = audio.sample_rate).")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatalf("%v", err)
	}
	if *rate > 0 {
		cfg.Audio.SampleRate = *rate
	}

	var files [len(sfx.Sounds)]string
	files[sfx.SoundScore] = cfg.Audio.ScoreSound
	files[sfx.SoundStart] = cfg.Audio.StartSound
	files[sfx.SoundMusic] = cfg.Audio.Music
	bank, err := sfx.LoadBank(sfx.BankConfig{SampleRate: cfg.Audio.SampleRate, Files: files})
	if err != nil {
		fatalf("%v", err)
	}

	sounds := sfx.Sounds[:]
	if *sound != "all" {
		s, err := sfx.ParseSound(*sound)
		if err != nil {
			fatalf("%v", err)
		}
		sounds = []sfx.Sound{s}
	}

	for _, s := range sounds {
		path := filepath.Join(*outDir, s.String()+".wav")
		if err := writeSound(bank, s, path); err != nil {
			fatalf("%s: %v", path, err)
		}
		fmt.Printf("%s: %d samples at %d Hz\n", path, bank.Len(s), bank.SampleRate())
	}
}

func writeSound(bank *sfx.Bank, s sfx.Sound, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bank.WriteWAV(out, s); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
