//go:build tinygo && baremetal && picocalc

package main

import (
	"siikasaurus/app"
	"siikasaurus/config"
	"siikasaurus/hal"
)

func main() {
	cfg := config.Default()
	// The PicoCalc has one keyboard and a slow PWM output.
	cfg.Game.MaxDevices = 1
	cfg.Audio.SampleRate = 11025
	app.Run(hal.New(), app.Options{Config: cfg})
}
