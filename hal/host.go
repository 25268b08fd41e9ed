//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Sink names accepted by HostConfig.Sink.
const (
	SinkMemory = "memory"
	SinkWindow = "window"
	SinkSixel  = "sixel"
	SinkFBDev  = "fbdev"
	SinkPNG    = "png"
)

// HostConfig selects the devices of the host HAL.
type HostConfig struct {
	Sink   string
	Width  int
	Height int

	// Scale enlarges the window; for sixel it is a shrink divisor.
	Scale int

	// Hz paces presents; zero presents as fast as the sink accepts.
	Hz int

	// Seeded selects a deterministic RNG seeded with Seed instead of the
	// system entropy source.
	Seeded bool
	Seed   uint64

	// Out is the PNG path for the png sink.
	Out string

	// Term receives sixel output; nil means stdout.
	Term io.Writer

	// Console receives HAL log lines; nil means stdout.
	Console io.Writer
}

func (c HostConfig) withDefaults() HostConfig {
	if c.Sink == "" {
		c.Sink = SinkMemory
	}
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Out == "" {
		c.Out = "sierpinski.png"
	}
	if c.Term == nil {
		c.Term = os.Stdout
	}
	if c.Console == nil {
		c.Console = os.Stdout
	}
	return c
}

type hostHAL struct {
	cfg    HostConfig
	logger *hostLogger

	// window is set by RunWindow; the window sink can only live on the
	// main thread so it is created there, not in Display.
	window *windowDisplay
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	cfg = cfg.withDefaults()
	return &hostHAL{
		cfg:    cfg,
		logger: &hostLogger{w: cfg.Console},
	}
}

func (h *hostHAL) Logger() Logger { return h.logger }

func (h *hostHAL) Display() (Display, error) {
	var (
		d   Display
		err error
	)
	switch h.cfg.Sink {
	case SinkMemory:
		d = NewMemoryDisplay(h.cfg.Width, h.cfg.Height, 1)
	case SinkWindow:
		if h.window == nil {
			return nil, fmt.Errorf("%w: window sink needs the window runner", ErrUnavailable)
		}
		// ebiten paces the window itself
		return h.window, nil
	case SinkSixel:
		d = newSixelDisplay(h.cfg.Term, h.cfg.Width, h.cfg.Height, h.cfg.Scale)
	case SinkFBDev:
		d, err = newFBDevDisplay(h.cfg.Width, h.cfg.Height)
	case SinkPNG:
		d = newPNGDisplay(h.cfg.Out, h.cfg.Width, h.cfg.Height)
	default:
		return nil, fmt.Errorf("%w: unknown sink %q", ErrUnavailable, h.cfg.Sink)
	}
	if err != nil {
		return nil, err
	}
	return Paced(d, h.cfg.Hz), nil
}

func (h *hostHAL) RNG() (RNG, error) {
	if h.cfg.Seeded {
		return NewSeededRNG(h.cfg.Seed), nil
	}
	return NewEntropyRNG(nil), nil
}

func (h *hostHAL) ImagePath() (string, error) {
	p, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: image path: %v", ErrUnavailable, err)
	}
	return p, nil
}

func (h *hostHAL) Stall(ctx context.Context, d time.Duration) error {
	return stall(ctx, d)
}

// RunHeadless runs fn against a host HAL without opening a window.
func RunHeadless(ctx context.Context, cfg HostConfig, fn func(context.Context, HAL) error) error {
	if cfg.Sink == SinkWindow {
		return fmt.Errorf("%w: window sink in headless mode", ErrUnavailable)
	}
	return fn(ctx, newHost(cfg))
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
