//go:build tinygo && baremetal && picocalc

package hal

import (
	"context"
	"fmt"
	"time"

	"sierpinski/gfx"
)

type picoCalcHAL struct {
	logger *uartLogger
	lcd    *ili9488
	lcdErr error
}

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	lcd, err := initILI9488()
	return &picoCalcHAL{
		logger: newUARTLogger(),
		lcd:    lcd,
		lcdErr: err,
	}
}

func (h *picoCalcHAL) Logger() Logger { return h.logger }

func (h *picoCalcHAL) Display() (Display, error) {
	if h.lcd == nil {
		return nil, fmt.Errorf("%w: lcd: %v", ErrUnavailable, h.lcdErr)
	}
	return &picoCalcDisplay{lcd: h.lcd, w: 320, h: 320}, nil
}

func (h *picoCalcHAL) RNG() (RNG, error)          { return newTRNG() }
func (h *picoCalcHAL) ImagePath() (string, error) { return firmwareImagePath() }

func (h *picoCalcHAL) Stall(ctx context.Context, d time.Duration) error {
	return firmwareStall(ctx, d)
}

type picoCalcDisplay struct {
	lcd *ili9488
	w   int
	h   int
}

func (d *picoCalcDisplay) Resolution() (int, int) { return d.w, d.h }

func (d *picoCalcDisplay) Present(f gfx.Frame) error {
	if f.Width != d.w || f.Height != d.h {
		return fmt.Errorf("lcd: frame %dx%d does not match panel %dx%d", f.Width, f.Height, d.w, d.h)
	}
	return d.lcd.blit(f.Pix, f.Width, f.Height)
}
