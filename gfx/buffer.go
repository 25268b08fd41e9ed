// Package gfx holds the off-screen pixel buffer and the display sink it is
// presented to.
package gfx

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

var (
	// ErrInvalidDimensions is returned for a zero or negative width or height.
	ErrInvalidDimensions = errors.New("gfx: invalid dimensions")
	// ErrBufferTooLarge is returned when width*height does not fit in an int.
	ErrBufferTooLarge = fmt.Errorf("%w: buffer too large", ErrInvalidDimensions)
)

// Pixel mirrors the firmware blit pixel: blue, green, red, reserved.
type Pixel struct {
	Blue     uint8
	Green    uint8
	Red      uint8
	Reserved uint8
}

// RGB returns a pixel with the reserved byte cleared.
func RGB(r, g, b uint8) Pixel {
	return Pixel{Red: r, Green: g, Blue: b}
}

// RGBA implements color.Color. Pixels are always opaque.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: p.Red, G: p.Green, B: p.Blue, A: 0xFF}.RGBA()
}

// PixelBuffer is a row-major width*height array of pixels. It is never
// resized after construction.
type PixelBuffer struct {
	width  int
	height int
	pix    []Pixel
}

// NewPixelBuffer allocates a black buffer.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/height || width*height > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrBufferTooLarge, width, height)
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}, nil
}

// maxPixels keeps the byte size of the backing array addressable.
const maxPixels = math.MaxInt / 4

func (b *PixelBuffer) Width() int  { return b.width }
func (b *PixelBuffer) Height() int { return b.height }

// Pixel returns the pixel at (x, y), or nil if the coordinates are outside
// the buffer.
func (b *PixelBuffer) Pixel(x, y int) *Pixel {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return nil
	}
	return &b.pix[y*b.width+x]
}

// Set writes p at (x, y) and reports whether the coordinates were in range.
func (b *PixelBuffer) Set(x, y int, p Pixel) bool {
	dst := b.Pixel(x, y)
	if dst == nil {
		return false
	}
	*dst = p
	return true
}

// Fill sets every pixel to p.
func (b *PixelBuffer) Fill(p Pixel) {
	for i := range b.pix {
		b.pix[i] = p
	}
}

// Frame returns a view of the whole buffer. The view shares storage with
// the buffer.
func (b *PixelBuffer) Frame() Frame {
	return Frame{Pix: b.pix, Width: b.width, Height: b.height}
}

// Clone returns a deep copy of b.
func (b *PixelBuffer) Clone() *PixelBuffer {
	pix := make([]Pixel, len(b.pix))
	copy(pix, b.pix)
	return &PixelBuffer{width: b.width, height: b.height, pix: pix}
}

// Frame is a full-surface transfer anchored at the origin.
//
// Sinks must copy Pix if they keep it past Present.
type Frame struct {
	Pix    []Pixel
	Width  int
	Height int
}

var _ image.Image = Frame{}

func (f Frame) ColorModel() color.Model { return color.RGBAModel }

func (f Frame) Bounds() image.Rectangle { return image.Rect(0, 0, f.Width, f.Height) }

func (f Frame) At(x, y int) color.Color {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return color.RGBA{}
	}
	return f.Pix[y*f.Width+x]
}

// Copy returns a frame backed by its own storage.
func (f Frame) Copy() Frame {
	pix := make([]Pixel, len(f.Pix))
	copy(pix, f.Pix)
	return Frame{Pix: pix, Width: f.Width, Height: f.Height}
}

// RGBA converts the frame to an *image.RGBA.
func (f Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(f.Bounds())
	f.CopyToRGBA(img.Pix)
	return img
}

// CopyToRGBA writes the frame as packed RGBA bytes into dst, which must
// hold at least 4*Width*Height bytes.
func (f Frame) CopyToRGBA(dst []byte) {
	for i, p := range f.Pix {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		dst[j+0] = p.Red
		dst[j+1] = p.Green
		dst[j+2] = p.Blue
		dst[j+3] = 0xFF
	}
}
