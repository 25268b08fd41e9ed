//go:build !tinygo && cgo

package hal

import (
	"context"
	"errors"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"sierpinski/gfx"
	"sierpinski/internal/buildinfo"
)

// RunWindow opens a desktop window showing the window sink and runs fn
// against a host HAL on another goroutine. It blocks until the window
// closes or fn fails. A successful fn leaves the last frame on screen.
func RunWindow(ctx context.Context, cfg HostConfig, fn func(context.Context, HAL) error) error {
	cfg.Sink = SinkWindow
	h := newHost(cfg)
	h.window = newWindowDisplay(h.cfg.Width, h.cfg.Height)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g := &hostGame{win: h.window, errc: make(chan error, 1), ctx: ctx}
	go func() { g.errc <- fn(ctx, h) }()

	ebiten.SetWindowTitle("Sierpinski (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.cfg.Width*h.cfg.Scale, h.cfg.Height*h.cfg.Scale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)

	cancel()
	h.window.Close()
	if !g.done {
		// the loop sees the closed sink or the cancelled context
		<-g.errc
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	win   *windowDisplay
	ctx   context.Context
	errc  chan error
	done  bool
	fbImg *ebiten.Image
}

func (g *hostGame) Update() error {
	if g.done {
		return nil
	}
	select {
	case err := <-g.errc:
		g.done = true
		return err
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
		return nil
	}
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	w := g.win
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(w.width, w.height)
	}
	w.mu.Lock()
	if w.dirty {
		g.fbImg.WritePixels(w.rgba)
		w.dirty = false
	}
	w.mu.Unlock()
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.win.width, g.win.height
}

// windowDisplay hands frames to the ebiten draw loop.
type windowDisplay struct {
	mu     sync.Mutex
	width  int
	height int
	rgba   []byte
	dirty  bool
	closed bool
}

func newWindowDisplay(width, height int) *windowDisplay {
	return &windowDisplay{
		width:  width,
		height: height,
		rgba:   make([]byte, width*height*4),
	}
}

func (d *windowDisplay) Resolution() (int, int) { return d.width, d.height }

func (d *windowDisplay) Present(f gfx.Frame) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}
	f.CopyToRGBA(d.rgba)
	d.dirty = true
	return nil
}

func (d *windowDisplay) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}
