//go:build tinygo && baremetal && !picocalc

package hal

import (
	"context"
	"fmt"
	"time"
)

type tinyGoHAL struct {
	logger *uartLogger
}

// New returns a Pico 2 (RP2350) HAL implementation. The bare board has no
// panel, so Display always fails.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	return &tinyGoHAL{logger: newUARTLogger()}
}

func (h *tinyGoHAL) Logger() Logger { return h.logger }

func (h *tinyGoHAL) Display() (Display, error) {
	return nil, fmt.Errorf("%w: no display on this board", ErrUnavailable)
}

func (h *tinyGoHAL) RNG() (RNG, error)          { return newTRNG() }
func (h *tinyGoHAL) ImagePath() (string, error) { return firmwareImagePath() }

func (h *tinyGoHAL) Stall(ctx context.Context, d time.Duration) error {
	return firmwareStall(ctx, d)
}
