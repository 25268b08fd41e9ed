package hal

import (
	"io"
	"time"

	"sierpinski/gfx"
)

// Paced limits d to hz presents per second. hz <= 0 returns d unchanged.
func Paced(d Display, hz int) Display {
	if hz <= 0 {
		return d
	}
	interval := time.Second / time.Duration(hz)
	if interval <= 0 {
		return d
	}
	return &pacedDisplay{d: d, t: time.NewTicker(interval)}
}

type pacedDisplay struct {
	d Display
	t *time.Ticker
}

func (p *pacedDisplay) Resolution() (int, int) { return p.d.Resolution() }

func (p *pacedDisplay) Present(f gfx.Frame) error {
	<-p.t.C
	return p.d.Present(f)
}

func (p *pacedDisplay) Close() error {
	p.t.Stop()
	if c, ok := p.d.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
