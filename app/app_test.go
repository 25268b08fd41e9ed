package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sierpinski/chaos"
	"sierpinski/gfx"
	"sierpinski/hal"
)

type console struct{ lines []string }

func (c *console) WriteLineString(s string) { c.lines = append(c.lines, s) }
func (c *console) WriteLineBytes(b []byte)  { c.lines = append(c.lines, string(b)) }

type fakeHAL struct {
	console  console
	disp     hal.Display
	dispErr  error
	rngErr   error
	pathErr  error
	stalled  time.Duration
	stallErr error
}

func (h *fakeHAL) Logger() hal.Logger { return &h.console }

func (h *fakeHAL) Display() (hal.Display, error) {
	if h.dispErr != nil {
		return nil, h.dispErr
	}
	return h.disp, nil
}

func (h *fakeHAL) RNG() (hal.RNG, error) {
	if h.rngErr != nil {
		return nil, h.rngErr
	}
	return hal.NewSeededRNG(1), nil
}

func (h *fakeHAL) ImagePath() (string, error) {
	if h.pathErr != nil {
		return "", h.pathErr
	}
	return `\EFI\BOOT\BOOTX64.EFI`, nil
}

func (h *fakeHAL) Stall(ctx context.Context, d time.Duration) error {
	h.stalled += d
	return h.stallErr
}

func gradient(t *testing.T, w, h int) gfx.Frame {
	t.Helper()
	b, err := gfx.NewPixelBuffer(w, h)
	require.NoError(t, err)
	gfx.FillGradient(b)
	return b.Frame()
}

func TestStartGreetsAndPresentsGradient(t *testing.T) {
	disp := hal.NewMemoryDisplay(48, 32, 8)
	h := &fakeHAL{disp: disp}

	err := Start(context.Background(), h, Config{Bounded: true})
	require.NoError(t, err)

	assert.Equal(t, []string{`Image path: \EFI\BOOT\BOOTX64.EFI`, "Hello world!"}, h.console.lines)
	assert.Zero(t, h.stalled)
	require.Equal(t, uint64(1), disp.Count())
	last, _ := disp.Last()
	assert.Equal(t, gradient(t, 48, 32), last)
}

func TestStartShowsBannerDuringStall(t *testing.T) {
	disp := hal.NewMemoryDisplay(160, 64, 8)
	h := &fakeHAL{disp: disp}

	cfg := Config{Bounded: true, Steps: 3, Stall: 2 * time.Second, Banner: true}
	require.NoError(t, Start(context.Background(), h, cfg))
	assert.Equal(t, 2*time.Second, h.stalled)

	frames := disp.Frames()
	// banner, gradient, three steps
	require.Len(t, frames, 5)

	lit := 0
	for _, p := range frames[0].Pix {
		switch p {
		case gfx.RGB(0xFF, 0xFF, 0xFF):
			lit++
		case gfx.Pixel{}:
		default:
			t.Fatalf("unexpected banner pixel %+v", p)
		}
	}
	assert.Positive(t, lit)
	assert.Equal(t, gradient(t, 160, 64), frames[1])
}

func TestStartWithoutBanner(t *testing.T) {
	disp := hal.NewMemoryDisplay(16, 16, 4)
	h := &fakeHAL{disp: disp}

	require.NoError(t, Start(context.Background(), h, Config{Bounded: true, Stall: time.Second}))
	assert.Equal(t, time.Second, h.stalled)
	assert.Equal(t, uint64(1), disp.Count())
}

func TestStartResourceUnavailable(t *testing.T) {
	devErr := errors.New("no GOP handle")

	h := &fakeHAL{dispErr: devErr}
	err := Start(context.Background(), h, Config{Bounded: true})
	assert.ErrorIs(t, err, chaos.ErrResourceUnavailable)
	assert.ErrorIs(t, err, devErr)
	assert.Contains(t, err.Error(), "display")

	disp := hal.NewMemoryDisplay(8, 8, 1)
	h = &fakeHAL{disp: disp, rngErr: devErr}
	err = Start(context.Background(), h, Config{Bounded: true})
	assert.ErrorIs(t, err, chaos.ErrResourceUnavailable)
	assert.ErrorIs(t, err, devErr)
	assert.Zero(t, disp.Count())

	var stacked interface{ ErrorStack() string }
	assert.True(t, errors.As(err, &stacked))
}

func TestStartImagePathOptional(t *testing.T) {
	h := &fakeHAL{disp: hal.NewMemoryDisplay(8, 8, 1), pathErr: hal.ErrUnavailable}
	require.NoError(t, Start(context.Background(), h, Config{Bounded: true}))
	assert.Equal(t, "Image path: <unknown>", h.console.lines[0])
}

type failingDisplay struct {
	hal.Display
	err error
}

func (d failingDisplay) Present(gfx.Frame) error { return d.err }

func TestStartPresentFailure(t *testing.T) {
	blt := errors.New("blt: device error")
	h := &fakeHAL{disp: failingDisplay{Display: hal.NewMemoryDisplay(8, 8, 1), err: blt}}

	err := Start(context.Background(), h, Config{Bounded: true, Steps: 10})
	assert.ErrorIs(t, err, blt)
}

func TestStartStallCancelled(t *testing.T) {
	h := &fakeHAL{disp: hal.NewMemoryDisplay(8, 8, 1), stallErr: context.Canceled}
	err := Start(context.Background(), h, Config{Stall: time.Minute})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStartUnboundedCancel(t *testing.T) {
	disp := hal.NewMemoryDisplay(32, 32, 1)
	h := &fakeHAL{disp: disp}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := Start(ctx, h, Config{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, disp.Count(), uint64(1))
}

type closingDisplay struct {
	*hal.MemoryDisplay
	closed bool
	err    error
}

func (d *closingDisplay) Close() error {
	d.closed = true
	return d.err
}

func TestStartClosesDisplay(t *testing.T) {
	d := &closingDisplay{MemoryDisplay: hal.NewMemoryDisplay(8, 8, 1)}
	require.NoError(t, Start(context.Background(), &fakeHAL{disp: d}, Config{Bounded: true}))
	assert.True(t, d.closed)

	closeErr := errors.New("disk full")
	d = &closingDisplay{MemoryDisplay: hal.NewMemoryDisplay(8, 8, 1), err: closeErr}
	err := Start(context.Background(), &fakeHAL{disp: d}, Config{Bounded: true})
	assert.ErrorIs(t, err, closeErr)
}
