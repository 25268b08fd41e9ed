package gfx

import "math"

// FillGradient paints the background: red follows the row, green the
// column, blue is saturated. A single row or column gets ratio 0.
func FillGradient(b *PixelBuffer) {
	rowDen := float64(max(b.height-1, 1))
	colDen := float64(max(b.width-1, 1))

	for y := 0; y < b.height; y++ {
		r := channel(float64(y) / rowDen)
		row := b.pix[y*b.width : (y+1)*b.width]
		for x := range row {
			row[x] = Pixel{
				Red:   r,
				Green: channel(float64(x) / colDen),
				Blue:  0xFF,
			}
		}
	}
}

func channel(ratio float64) uint8 {
	v := math.Round(255 * ratio)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
