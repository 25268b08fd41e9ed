//go:build tinygo && !baremetal

package hal

import (
	"context"
	"fmt"
	"os"
	"time"
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	disp   *MemoryDisplay
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no
// panel; frames are kept in memory.
func New() HAL {
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		disp:   NewMemoryDisplay(320, 320, 1),
	}
}

func (h *tinyGoHostHAL) Logger() Logger            { return h.logger }
func (h *tinyGoHostHAL) Display() (Display, error) { return h.disp, nil }
func (h *tinyGoHostHAL) RNG() (RNG, error)         { return NewEntropyRNG(nil), nil }

func (h *tinyGoHostHAL) ImagePath() (string, error) {
	p, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: image path: %v", ErrUnavailable, err)
	}
	return p, nil
}

func (h *tinyGoHostHAL) Stall(ctx context.Context, d time.Duration) error {
	return stall(ctx, d)
}

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}
