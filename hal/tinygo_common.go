//go:build tinygo && baremetal

package hal

import (
	"context"
	"fmt"
	"machine"
	"math/bits"
	"time"

	"sierpinski/internal/buildinfo"
)

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func newUARTLogger() *uartLogger {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	return &uartLogger{uart: uart}
}

// trngRNG draws from the RP2 ring-oscillator random generator.
type trngRNG struct{}

func newTRNG() (RNG, error) {
	if _, err := machine.GetRNG(); err != nil {
		return nil, fmt.Errorf("%w: rng: %v", ErrUnavailable, err)
	}
	return trngRNG{}, nil
}

func (trngRNG) Uint() (uint, error) {
	lo, err := machine.GetRNG()
	if err != nil {
		return 0, fmt.Errorf("%w: rng: %v", ErrUnavailable, err)
	}
	if bits.UintSize == 32 {
		return uint(lo), nil
	}
	hi, err := machine.GetRNG()
	if err != nil {
		return 0, fmt.Errorf("%w: rng: %v", ErrUnavailable, err)
	}
	return uint(uint64(hi)<<32 | uint64(lo)), nil
}

func firmwareImagePath() (string, error) {
	if buildinfo.ImagePath == "" {
		return "", fmt.Errorf("%w: image path not set", ErrUnavailable)
	}
	return buildinfo.ImagePath, nil
}

func firmwareStall(ctx context.Context, d time.Duration) error {
	return stall(ctx, d)
}
