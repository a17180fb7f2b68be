//go:build tinygo && baremetal && picocalc

package hal

import (
	"machine"
	"sync"
	"time"

	"siikasaurus/pad"
)

type picoCalcHAL struct {
	logger *uartLogger
	fb     Framebuffer
	pads   Gamepads
	audio  Audio
}

// New returns the PicoCalc machine (Pico/Pico2 on the PicoCalc carrier).
// The built-in keyboard is the only controller and drives slot 0.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	disp, err := newPicoCalcDisplay()
	if err != nil {
		logger.WriteLineString("display: " + err.Error())
		disp = newPicoCalcDisplayStub()
	}

	var pads Gamepads
	if kb, err := newPicoCalcPad(); err == nil {
		pads = kb
	} else {
		logger.WriteLineString("keyboard: " + err.Error())
		pads = NewVirtualPads(1)
	}

	return &picoCalcHAL{
		logger: logger,
		fb:     disp,
		pads:   pads,
		audio:  newTinyGoAudio(),
	}
}

func (h *picoCalcHAL) Logger() Logger   { return h.logger }
func (h *picoCalcHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *picoCalcHAL) Input() Input     { return tinyGoInput{pads: h.pads} }
func (h *picoCalcHAL) Audio() Audio     { return h.audio }

// The panel is 320x320; the game uses the centered 320x240 band.
const (
	picoCalcWidth  = 320
	picoCalcHeight = 240
)

type picoCalcFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd *ili9488
}

func (f *picoCalcFramebuffer) Width() int          { return f.w }
func (f *picoCalcFramebuffer) Height() int         { return f.h }
func (f *picoCalcFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *picoCalcFramebuffer) StrideBytes() int    { return f.stride }
func (f *picoCalcFramebuffer) Buffer() []byte      { return f.buf }

func (f *picoCalcFramebuffer) ClearRGB(r, g, b uint8) { fillRGB565(f.buf, r, g, b) }

func (f *picoCalcFramebuffer) Present() error {
	if f.lcd == nil {
		return ErrNotImplemented
	}
	return f.lcd.blitRGB565LittleEndian(f.buf, (ili9488Size-f.h)/2, f.w, f.h)
}

func newPicoCalcDisplay() (*picoCalcFramebuffer, error) {
	lcd, err := initILI9488()
	if err != nil {
		return nil, err
	}
	f := newPicoCalcDisplayStub()
	f.lcd = lcd
	return f, nil
}

func newPicoCalcDisplayStub() *picoCalcFramebuffer {
	return &picoCalcFramebuffer{
		w:      picoCalcWidth,
		h:      picoCalcHeight,
		stride: picoCalcWidth * 2,
		buf:    make([]byte, picoCalcWidth*picoCalcHeight*2),
	}
}

// picoCalcPad turns keyboard events into the held buttons of slot 0.
type picoCalcPad struct {
	mu   sync.Mutex
	held pad.ButtonMask
	bank *pad.Bank
}

func newPicoCalcPad() (*picoCalcPad, error) {
	kbd, err := initI2CKeyboard()
	if err != nil {
		return nil, err
	}
	p := &picoCalcPad{bank: pad.NewBank(1)}

	go func() {
		for {
			if btn, down, ok := kbd.readButton(); ok {
				p.mu.Lock()
				if down {
					p.held |= btn
				} else {
					p.held &^= btn
				}
				p.mu.Unlock()
			}
			time.Sleep(2 * time.Millisecond)
		}
	}()
	return p, nil
}

func (p *picoCalcPad) Poll(dst []pad.Slot) []pad.Slot {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bank.Update(0, true, p.held)
	return p.bank.AppendPresent(dst)
}
