package hal

import (
	"fmt"
	"sync"

	"sierpinski/gfx"
)

// MemoryDisplay records presented frames without showing them.
type MemoryDisplay struct {
	mu     sync.Mutex
	width  int
	height int
	keep   int
	count  uint64
	frames []gfx.Frame
	closed bool
}

// NewMemoryDisplay returns a display of the given size that keeps the last
// keep frames (at least one).
func NewMemoryDisplay(width, height, keep int) *MemoryDisplay {
	return &MemoryDisplay{width: width, height: height, keep: max(keep, 1)}
}

func (d *MemoryDisplay) Resolution() (int, int) { return d.width, d.height }

func (d *MemoryDisplay) Present(f gfx.Frame) error {
	if f.Width != d.width || f.Height != d.height {
		return fmt.Errorf("hal: frame %dx%d does not match display %dx%d", f.Width, f.Height, d.width, d.height)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}
	d.count++
	if len(d.frames) == d.keep {
		copy(d.frames, d.frames[1:])
		d.frames = d.frames[:d.keep-1]
	}
	d.frames = append(d.frames, f.Copy())
	return nil
}

// Count returns how many frames have been presented.
func (d *MemoryDisplay) Count() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.count
}

// Frames returns the retained frames, oldest first.
func (d *MemoryDisplay) Frames() []gfx.Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]gfx.Frame, len(d.frames))
	copy(out, d.frames)
	return out
}

// Last returns the most recent frame.
func (d *MemoryDisplay) Last() (gfx.Frame, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.frames) == 0 {
		return gfx.Frame{}, false
	}
	return d.frames[len(d.frames)-1], true
}

func (d *MemoryDisplay) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}
