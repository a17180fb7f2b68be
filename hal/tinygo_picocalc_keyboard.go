//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"

	"siikasaurus/pad"
)

const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdCmd         = 0x09
)

const (
	picoCalcKeyLeft  byte = 0xB4
	picoCalcKeyRight byte = 0xB7
	picoCalcKeyUp    byte = 0xB5
	picoCalcKeyDown  byte = 0xB6
)

// Event types reported by the keyboard MCU.
const (
	picoCalcKeyPressed  = 0x01
	picoCalcKeyReleased = 0x03
)

type i2cKeyboard struct {
	i2c   *machine.I2C
	write [1]byte
	read  [2]byte
}

func initI2CKeyboard() (*i2cKeyboard, error) {
	write := [1]byte{picoCalcKbdCmd}

	// Prefer I2C1 (original PicoCalc wiring), but some TinyGo targets expose only I2C0.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			if err := bus.Configure(machine.I2CConfig{
				SCL:       machine.GP7,
				SDA:       machine.GP6,
				Frequency: freq,
			}); err != nil {
				continue
			}

			k := &i2cKeyboard{i2c: bus, write: write}

			// The keyboard MCU can be slow to answer right after boot.
			const probeTries = 50
			for i := 0; i < probeTries; i++ {
				if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err == nil {
					return k, nil
				}
				time.Sleep(10 * time.Millisecond)
			}
		}
	}

	return nil, errors.New("I2C unavailable")
}

// readButton polls one key event and maps it to a controller button.
func (k *i2cKeyboard) readButton() (btn pad.ButtonMask, down, ok bool) {
	if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err != nil {
		return 0, false, false
	}
	switch k.read[0] {
	case picoCalcKeyPressed:
		down = true
	case picoCalcKeyReleased:
		down = false
	default:
		return 0, false, false
	}
	btn = picoCalcButton(k.read[1])
	return btn, down, btn != 0
}

// picoCalcButton uses the same layout as the desktop keyboard.
func picoCalcButton(code byte) pad.ButtonMask {
	if code >= 'A' && code <= 'Z' {
		code += 'a' - 'A'
	}
	switch code {
	case picoCalcKeyUp:
		return pad.Up
	case picoCalcKeyRight:
		return pad.Right
	case picoCalcKeyDown:
		return pad.Down
	case picoCalcKeyLeft:
		return pad.Left
	case 'z':
		return pad.A
	case 'x':
		return pad.B
	case 'c':
		return pad.C
	case 'a':
		return pad.X
	case 's':
		return pad.Y
	case 'd':
		return pad.Z
	case 'q':
		return pad.L
	case 'e':
		return pad.R
	case '\r', '\n', ' ':
		return pad.Start
	}
	return 0
}
