package gfx

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Screen pairs a buffer with the sink it is shown on, so driver-level
// drawing code (fonts, shapes) can target the buffer.
type Screen struct {
	Buf  *PixelBuffer
	Sink Sink
}

var _ drivers.Displayer = (*Screen)(nil)

func (s *Screen) Size() (x, y int16) {
	if s.Buf == nil {
		return 0, 0
	}
	return int16(min(s.Buf.width, 0x7FFF)), int16(min(s.Buf.height, 0x7FFF))
}

func (s *Screen) SetPixel(x, y int16, c color.RGBA) {
	if s.Buf == nil {
		return
	}
	s.Buf.Set(int(x), int(y), RGB(c.R, c.G, c.B))
}

// Display presents the buffer.
func (s *Screen) Display() error {
	if s.Buf == nil {
		return nil
	}
	return s.Buf.Present(s.Sink)
}

// FillRectangle clips the rectangle to the buffer and fills it.
func (s *Screen) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if s.Buf == nil {
		return nil
	}
	x0 := clampInt(int(x), 0, s.Buf.width)
	y0 := clampInt(int(y), 0, s.Buf.height)
	x1 := clampInt(int(x)+int(width), 0, s.Buf.width)
	y1 := clampInt(int(y)+int(height), 0, s.Buf.height)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	p := RGB(c.R, c.G, c.B)
	for py := y0; py < y1; py++ {
		row := s.Buf.pix[py*s.Buf.width : (py+1)*s.Buf.width]
		for px := x0; px < x1; px++ {
			row[px] = p
		}
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
