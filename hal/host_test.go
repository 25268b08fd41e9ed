//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sierpinski/gfx"
)

func TestHostDisplaySelection(t *testing.T) {
	h := New(HostConfig{Width: 32, Height: 24})
	d, err := h.Display()
	require.NoError(t, err)
	w, ht := d.Resolution()
	assert.Equal(t, 32, w)
	assert.Equal(t, 24, ht)
	assert.IsType(t, &MemoryDisplay{}, d)

	_, err = New(HostConfig{Sink: "plotter"}).Display()
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = New(HostConfig{Sink: SinkWindow}).Display()
	assert.ErrorIs(t, err, ErrUnavailable)

	d, err = New(HostConfig{Sink: SinkMemory, Hz: 50}).Display()
	require.NoError(t, err)
	assert.IsType(t, &pacedDisplay{}, d)
	d.(io.Closer).Close()
}

func TestHostRNG(t *testing.T) {
	a, err := New(HostConfig{Seeded: true, Seed: 3}).RNG()
	require.NoError(t, err)
	b, err := New(HostConfig{Seeded: true, Seed: 3}).RNG()
	require.NoError(t, err)
	x, _ := a.Uint()
	y, _ := b.Uint()
	assert.Equal(t, x, y)

	g, err := New(HostConfig{}).RNG()
	require.NoError(t, err)
	assert.IsType(t, &entropyRNG{}, g)
}

func TestHostImagePathAndLogger(t *testing.T) {
	var buf bytes.Buffer
	h := New(HostConfig{Console: &buf})

	p, err := h.ImagePath()
	require.NoError(t, err)
	assert.NotEmpty(t, p)

	h.Logger().WriteLineString("Hello world!")
	h.Logger().WriteLineBytes([]byte("bytes"))
	assert.Equal(t, "Hello world!\nbytes\n", buf.String())
}

func TestHostStall(t *testing.T) {
	h := New(HostConfig{})
	require.NoError(t, h.Stall(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, h.Stall(ctx, time.Hour), context.Canceled)
}

func TestRunHeadless(t *testing.T) {
	var called bool
	err := RunHeadless(context.Background(), HostConfig{Width: 8, Height: 8}, func(ctx context.Context, h HAL) error {
		called = true
		d, err := h.Display()
		if err != nil {
			return err
		}
		b, err := gfx.NewPixelBuffer(d.Resolution())
		if err != nil {
			return err
		}
		return b.Present(d)
	})
	require.NoError(t, err)
	assert.True(t, called)

	err = RunHeadless(context.Background(), HostConfig{Sink: SinkWindow}, func(context.Context, HAL) error { return nil })
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPNGDisplayWritesLastFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	d := newPNGDisplay(path, 3, 2)

	require.NoError(t, d.Present(frame(t, 3, 2, gfx.RGB(1, 2, 3))))
	require.NoError(t, d.Present(frame(t, 3, 2, gfx.RGB(0, 100, 0))))
	require.NoError(t, d.Close())
	assert.ErrorIs(t, d.Present(frame(t, 3, 2, gfx.Pixel{})), ErrClosed)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	r, g, b, _ := img.At(2, 1).RGBA()
	assert.Equal(t, []uint32{0, 100 * 0x101, 0}, []uint32{r, g, b})
}

func TestPNGDisplayNoFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.png")
	d := newPNGDisplay(path, 3, 2)
	require.NoError(t, d.Close())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSixelDisplay(t *testing.T) {
	var buf bytes.Buffer
	d := newSixelDisplay(&buf, 16, 8, 2)
	b, err := gfx.NewPixelBuffer(16, 8)
	require.NoError(t, err)
	gfx.FillGradient(b)
	require.NoError(t, b.Present(d))

	out := buf.String()
	assert.Contains(t, out, "\033[H")
	assert.Contains(t, out, "\033P")
	assert.Equal(t, 8, d.dst.Bounds().Dx())
	assert.Equal(t, 4, d.dst.Bounds().Dy())
}
