//go:build !tinygo

package hal

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"sync"

	"sierpinski/gfx"
)

// pngDisplay keeps the latest frame and writes it to a file on Close.
type pngDisplay struct {
	mu     sync.Mutex
	path   string
	width  int
	height int
	last   gfx.Frame
	have   bool
	closed bool
}

func newPNGDisplay(path string, width, height int) *pngDisplay {
	return &pngDisplay{path: path, width: width, height: height}
}

func (d *pngDisplay) Resolution() (int, int) { return d.width, d.height }

func (d *pngDisplay) Present(f gfx.Frame) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}
	if len(d.last.Pix) != len(f.Pix) {
		d.last.Pix = make([]gfx.Pixel, len(f.Pix))
	}
	copy(d.last.Pix, f.Pix)
	d.last.Width, d.last.Height = f.Width, f.Height
	d.have = true
	return nil
}

// Close writes the last presented frame. Nothing is written if no frame
// was presented.
func (d *pngDisplay) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	if !d.have {
		return nil
	}

	f, err := os.Create(d.path)
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}
	if err := WritePNG(f, d.last); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WritePNG encodes a frame as PNG.
func WritePNG(w io.Writer, f gfx.Frame) error {
	if err := png.Encode(w, f.RGBA()); err != nil {
		return fmt.Errorf("png: %w", err)
	}
	return nil
}
