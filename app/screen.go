package app

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"sierpinski/gfx"
	"sierpinski/hal"
)

var font = &proggy.TinySZ8pt7b

// showBanner presents the greeting, white on black.
func showBanner(d hal.Display, lines []string) error {
	return showText(d, lines, gfx.Pixel{}, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
}

// showFatal presents err, black on white, wrapped to the screen width.
func showFatal(d hal.Display, err error) error {
	lines := append([]string{"Sierpinski failed:"}, strings.Split(err.Error(), "\n")...)
	return showText(d, lines, gfx.RGB(0xFF, 0xFF, 0xFF), color.RGBA{A: 0xFF})
}

func showText(d hal.Display, lines []string, bg gfx.Pixel, fg color.RGBA) error {
	buf, err := gfx.NewPixelBuffer(d.Resolution())
	if err != nil {
		return err
	}
	buf.Fill(bg)
	s := &gfx.Screen{Buf: buf, Sink: d}

	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	lineHeight := int16(font.GetYAdvance())
	if fontWidth <= 0 || lineHeight <= 0 {
		return s.Display()
	}

	maxW, maxH := s.Size()
	cols := maxW / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := lineHeight
	for _, line := range lines {
		for len(line) > 0 {
			if y > maxH {
				return s.Display()
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(s, font, 0, y, chunk, fg)
			y += lineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	return s.Display()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
