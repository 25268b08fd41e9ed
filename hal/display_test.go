package hal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sierpinski/gfx"
)

func frame(t *testing.T, w, h int, p gfx.Pixel) gfx.Frame {
	t.Helper()
	b, err := gfx.NewPixelBuffer(w, h)
	require.NoError(t, err)
	b.Fill(p)
	return b.Frame()
}

func TestMemoryDisplayKeepsLastFrames(t *testing.T) {
	d := NewMemoryDisplay(4, 3, 2)
	w, h := d.Resolution()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)

	_, ok := d.Last()
	assert.False(t, ok)

	for i := uint8(1); i <= 3; i++ {
		require.NoError(t, d.Present(frame(t, 4, 3, gfx.RGB(i, 0, 0))))
	}
	assert.Equal(t, uint64(3), d.Count())

	frames := d.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, uint8(2), frames[0].Pix[0].Red)
	assert.Equal(t, uint8(3), frames[1].Pix[0].Red)

	last, ok := d.Last()
	require.True(t, ok)
	assert.Equal(t, uint8(3), last.Pix[11].Red)
}

func TestMemoryDisplayCopiesFrames(t *testing.T) {
	b, err := gfx.NewPixelBuffer(2, 2)
	require.NoError(t, err)
	d := NewMemoryDisplay(2, 2, 1)

	require.NoError(t, b.Present(d))
	b.Set(0, 0, gfx.RGB(9, 9, 9))

	last, _ := d.Last()
	assert.Equal(t, gfx.Pixel{}, last.Pix[0])
}

func TestMemoryDisplayRejects(t *testing.T) {
	d := NewMemoryDisplay(4, 4, 1)
	assert.Error(t, d.Present(frame(t, 2, 2, gfx.Pixel{})))

	require.NoError(t, d.Close())
	assert.ErrorIs(t, d.Present(frame(t, 4, 4, gfx.Pixel{})), ErrClosed)
}

func TestPaced(t *testing.T) {
	d := NewMemoryDisplay(2, 2, 1)
	assert.Same(t, d, Paced(d, 0))

	p := Paced(d, 100)
	defer p.(interface{ Close() error }).Close()

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Present(frame(t, 2, 2, gfx.Pixel{})))
	}
	assert.GreaterOrEqual(t, time.Since(start), 25*time.Millisecond)
	assert.Equal(t, uint64(3), d.Count())
}

type lines struct{ got []string }

func (l *lines) WriteLineString(s string) { l.got = append(l.got, s) }
func (l *lines) WriteLineBytes(b []byte)  { l.got = append(l.got, string(b)) }

func TestWriterSplitsLines(t *testing.T) {
	l := &lines{}
	w := Writer(l)

	n, err := w.Write([]byte("one\ntw"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, []string{"one"}, l.got)

	_, err = w.Write([]byte("o\nthree\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, l.got)
}
