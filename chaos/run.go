package chaos

import (
	"context"
	"time"

	"sierpinski/gfx"
	"sierpinski/internal/log"
)

var logger = log.New("chaos")

// Options controls the render loop.
type Options struct {
	// Steps is the number of points to plot when Bounded is set.
	Steps   uint64
	Bounded bool

	// PresentEvery presents after every n-th step. Zero means every step.
	PresentEvery uint64

	// PresentTimeout bounds each transfer to the sink. Zero waits forever.
	PresentTimeout time.Duration
}

// Bounded returns options that stop after n steps.
func Bounded(n uint64) Options {
	return Options{Steps: n, Bounded: true}
}

// Unbounded returns options that step until the context ends.
func Unbounded() Options {
	return Options{}
}

// Run paints the gradient, presents it, then plays the chaos game on a
// buffer the size of the sink, presenting as it goes. Sink and random
// source failures are returned unchanged. An unbounded run only returns on
// failure or when ctx ends, in which case ctx.Err() is returned.
func Run(ctx context.Context, sink gfx.Sink, rnd RandomSource, opts Options) error {
	if sink == nil || rnd == nil {
		return ErrResourceUnavailable
	}

	w, h := sink.Resolution()
	buf, err := gfx.NewPixelBuffer(w, h)
	if err != nil {
		return err
	}
	gfx.FillGradient(buf)
	r := NewRenderer(buf, rnd)
	logger.Debugf("rendering %dx%d, triangle %v", w, h, r.Triangle())

	every := opts.PresentEvery
	if every == 0 {
		every = 1
	}
	present := func() error {
		if opts.PresentTimeout <= 0 {
			return buf.Present(sink)
		}
		pctx, cancel := context.WithTimeout(ctx, opts.PresentTimeout)
		defer cancel()
		return buf.PresentContext(pctx, sink)
	}

	if err := present(); err != nil {
		return err
	}

	var presented bool
	for n := uint64(0); !opts.Bounded || n < opts.Steps; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, _, err := r.Step(); err != nil {
			return err
		}
		presented = (n+1)%every == 0
		if presented {
			if err := present(); err != nil {
				return err
			}
		}
	}

	if opts.Bounded && opts.Steps > 0 && !presented {
		if err := present(); err != nil {
			return err
		}
	}

	st := r.Stats()
	logger.Infof("done: %d steps, %d plotted, %d skipped", st.Steps, st.Plotted, st.Skipped)
	return nil
}
