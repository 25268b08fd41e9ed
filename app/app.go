package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	errorsGo "github.com/go-errors/errors"

	"sierpinski/chaos"
	"sierpinski/hal"
	"sierpinski/internal/log"
)

var logger = log.New("app")

// Config controls the boot sequence and the render loop.
type Config struct {
	// Steps bounds the render loop when Bounded is set.
	Steps   uint64
	Bounded bool

	PresentEvery   uint64
	PresentTimeout time.Duration

	// Stall pauses between the greeting and the first frame.
	Stall time.Duration

	// Banner shows the greeting on screen during the stall.
	Banner bool
}

// DefaultConfig is the firmware behaviour: greet, wait ten seconds, then
// render forever.
func DefaultConfig() Config {
	return Config{
		Stall:  10 * time.Second,
		Banner: true,
	}
}

// Run starts the demo and blocks forever (TinyGo/native entrypoint). A
// failure is reported on the console and, if possible, on screen.
func Run(h hal.HAL) {
	if err := Start(context.Background(), h, DefaultConfig()); err != nil {
		h.Logger().WriteLineString("sierpinski: " + err.Error())
		if d, derr := h.Display(); derr == nil {
			_ = showFatal(d, err)
		}
	}
	select {}
}

// Start greets on the console, acquires the display and the random
// source, then runs the chaos game. Acquisition failures wrap
// chaos.ErrResourceUnavailable; render failures are returned as they come.
func Start(ctx context.Context, h hal.HAL, cfg Config) (err error) {
	console := h.Logger()

	path, perr := h.ImagePath()
	if perr != nil {
		logger.Warningf("image path: %v", perr)
		path = "<unknown>"
	}
	greeting := []string{
		"Image path: " + path,
		"Hello world!",
	}
	for _, line := range greeting {
		console.WriteLineString(line)
	}

	disp, err := h.Display()
	if err != nil {
		return unavailable("display", err)
	}
	if c, ok := disp.(io.Closer); ok {
		defer func() {
			if cerr := c.Close(); cerr != nil {
				err = errors.Join(err, errorsGo.Wrap(cerr, 0))
			}
		}()
	}

	rng, err := h.RNG()
	if err != nil {
		return unavailable("rng", err)
	}

	if cfg.Stall > 0 {
		if cfg.Banner {
			if err := showBanner(disp, greeting); err != nil {
				return errorsGo.Wrap(err, 0)
			}
		}
		logger.Debugf("stalling for %v", cfg.Stall)
		if err := h.Stall(ctx, cfg.Stall); err != nil {
			return err
		}
	}

	w, ht := disp.Resolution()
	logger.Infof("display %dx%d", w, ht)

	opts := chaos.Options{
		Steps:          cfg.Steps,
		Bounded:        cfg.Bounded,
		PresentEvery:   cfg.PresentEvery,
		PresentTimeout: cfg.PresentTimeout,
	}
	if err := chaos.Run(ctx, disp, rng, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return errorsGo.Wrap(err, 0)
	}
	return nil
}

func unavailable(what string, err error) error {
	return errorsGo.Wrap(fmt.Errorf("%w: %s: %w", chaos.ErrResourceUnavailable, what, err), 1)
}
