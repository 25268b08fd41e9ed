//go:build linux && !tinygo

package hal

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/u-root/u-root/pkg/fb"

	"sierpinski/gfx"
)

const fbSizePath = "/sys/class/graphics/fb0/virtual_size"

// fbdevDisplay draws frames onto /dev/fb0.
type fbdevDisplay struct {
	width  int
	height int
}

func newFBDevDisplay(width, height int) (*fbdevDisplay, error) {
	if _, err := os.Stat("/dev/fb0"); err != nil {
		return nil, fmt.Errorf("%w: fbdev: %v", ErrUnavailable, err)
	}
	if w, h, err := readFBSize(fbSizePath); err == nil {
		width, height = w, h
	}
	return &fbdevDisplay{width: width, height: height}, nil
}

func (d *fbdevDisplay) Resolution() (int, int) { return d.width, d.height }

func (d *fbdevDisplay) Present(f gfx.Frame) error {
	return fb.DrawImageAt(f.RGBA(), 0, 0)
}

// readFBSize parses the "width,height" sysfs attribute.
func readFBSize(path string) (int, int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}
	return parseFBSize(string(b))
}

func parseFBSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return 0, 0, fmt.Errorf("fbdev: malformed size %q", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("fbdev: width: %w", err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("fbdev: height: %w", err)
	}
	return w, h, nil
}
