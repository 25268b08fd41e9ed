//go:build !tinygo

package hal

import (
	"fmt"
	"image"
	"io"

	sixel "github.com/mattn/go-sixel"
	xdraw "golang.org/x/image/draw"

	"sierpinski/gfx"
)

// sixelDisplay renders frames into a sixel-capable terminal.
type sixelDisplay struct {
	w      io.Writer
	width  int
	height int
	shrink int
	enc    *sixel.Encoder
	dst    *image.RGBA
}

func newSixelDisplay(w io.Writer, width, height, shrink int) *sixelDisplay {
	enc := sixel.NewEncoder(w)
	enc.Dither = true
	return &sixelDisplay{
		w:      w,
		width:  width,
		height: height,
		shrink: max(shrink, 1),
		enc:    enc,
	}
}

func (d *sixelDisplay) Resolution() (int, int) { return d.width, d.height }

func (d *sixelDisplay) Present(f gfx.Frame) error {
	var img image.Image = f.RGBA()
	if d.shrink > 1 {
		r := image.Rect(0, 0, max(f.Width/d.shrink, 1), max(f.Height/d.shrink, 1))
		if d.dst == nil || d.dst.Bounds() != r {
			d.dst = image.NewRGBA(r)
		}
		xdraw.ApproxBiLinear.Scale(d.dst, r, img, img.Bounds(), xdraw.Src, nil)
		img = d.dst
	}

	// home the cursor so frames overwrite each other
	if _, err := io.WriteString(d.w, "\033[H"); err != nil {
		return fmt.Errorf("sixel: %w", err)
	}
	if err := d.enc.Encode(img); err != nil {
		return fmt.Errorf("sixel: %w", err)
	}
	return nil
}
