package gfx

import (
	"context"
	"errors"
)

// ErrNoSink is returned when presenting to a nil sink.
var ErrNoSink = errors.New("gfx: no display sink")

// Sink is a display surface that accepts full-frame transfers.
type Sink interface {
	Resolution() (width, height int)
	Present(f Frame) error
}

// Present transfers the whole buffer to sink. Sink errors are returned
// unchanged.
func (b *PixelBuffer) Present(sink Sink) error {
	if sink == nil {
		return ErrNoSink
	}
	return sink.Present(b.Frame())
}

// PresentContext is Present bounded by ctx. If ctx ends before the sink
// returns, ctx.Err() is returned and the transfer is abandoned; the buffer
// must not be mutated again until the caller stops using it.
func (b *PixelBuffer) PresentContext(ctx context.Context, sink Sink) error {
	if sink == nil {
		return ErrNoSink
	}
	if ctx.Done() == nil {
		return sink.Present(b.Frame())
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- sink.Present(b.Frame()) }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
