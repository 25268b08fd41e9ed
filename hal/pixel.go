package hal

import "sierpinski/gfx"

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// encodeRGB565BE packs pixels for a panel that expects big-endian RGB565
// on the wire. It returns the number of pixels written.
func encodeRGB565BE(dst []byte, pix []gfx.Pixel) int {
	n := min(len(dst)/2, len(pix))
	for i := 0; i < n; i++ {
		p := pix[i]
		v := rgb565(p.Red, p.Green, p.Blue)
		dst[2*i] = byte(v >> 8)
		dst[2*i+1] = byte(v)
	}
	return n
}
