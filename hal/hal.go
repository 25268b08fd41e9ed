package hal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"sierpinski/gfx"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnavailable is wrapped by every failed capability lookup.
	ErrUnavailable = errors.New("hal: device unavailable")

	// ErrClosed is returned when presenting to a sink that has been closed.
	ErrClosed = errors.New("hal: display closed")
)

// PixelFormat defines the native encoding of a display panel.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Display is a screen that accepts full-frame transfers at the origin.
type Display interface {
	Resolution() (width, height int)
	Present(f gfx.Frame) error
}

// RNG yields native-width random words from an entropy device.
type RNG interface {
	Uint() (uint, error)
}

// HAL provides the only contact point between the demo and the platform.
//
// Display and RNG locate their devices on each call; callers acquire them
// once.
type HAL interface {
	Logger() Logger
	Display() (Display, error)
	RNG() (RNG, error)
	ImagePath() (string, error)
	Stall(ctx context.Context, d time.Duration) error
}

// Writer adapts a line logger to io.Writer. Partial lines are buffered
// until a newline arrives.
func Writer(l Logger) io.Writer {
	return &lineWriter{l: l}
}

type lineWriter struct {
	l   Logger
	buf []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.l.WriteLineBytes(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	if len(w.buf) == 0 {
		w.buf = nil
	}
	return len(p), nil
}

func stall(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
