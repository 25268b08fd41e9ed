package chaos

import (
	"sierpinski/gfx"
)

// Accent is the colour of plotted points.
var Accent = gfx.RGB(0, 100, 0)

// State is the lifecycle of a Renderer. There is no terminal state; the
// caller decides when to stop stepping.
type State uint8

const (
	Initialized State = iota
	Stepping
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Stepping:
		return "stepping"
	default:
		return "unknown"
	}
}

// Stats counts what the renderer has done so far.
type Stats struct {
	Steps   uint64
	Plotted uint64
	Skipped uint64
}

// Renderer owns a buffer and advances the chaos game one point at a time.
// It is not safe for concurrent use.
type Renderer struct {
	buf   *gfx.PixelBuffer
	tri   Triangle
	cur   Point
	rnd   RandomSource
	state State
	stats Stats
}

// NewRenderer builds the triangle for buf and places the current point at
// the buffer centre. The buffer contents are left untouched.
func NewRenderer(buf *gfx.PixelBuffer, rnd RandomSource) *Renderer {
	w, h := buf.Width(), buf.Height()
	return &Renderer{
		buf: buf,
		tri: NewTriangle(w, h),
		cur: Start(w, h),
		rnd: rnd,
	}
}

func (r *Renderer) Buffer() *gfx.PixelBuffer { return r.buf }
func (r *Renderer) Triangle() Triangle       { return r.tri }
func (r *Renderer) Current() Point           { return r.cur }
func (r *Renderer) State() State             { return r.state }
func (r *Renderer) Stats() Stats             { return r.stats }

// Step moves the current point halfway to a random vertex and plots it.
// It returns the new point and whether it landed inside the buffer.
// A random source failure leaves the renderer unchanged.
func (r *Renderer) Step() (Point, bool, error) {
	i, err := pickVertex(r.rnd)
	if err != nil {
		return r.cur, false, err
	}
	r.state = Stepping
	r.cur = midpoint(r.cur, r.tri[i])
	r.stats.Steps++

	x, okX := truncate(r.cur.X, r.buf.Width())
	y, okY := truncate(r.cur.Y, r.buf.Height())
	if !okX || !okY || !r.buf.Set(x, y, Accent) {
		r.stats.Skipped++
		return r.cur, false, nil
	}
	r.stats.Plotted++
	return r.cur, true, nil
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// truncate converts v toward zero and reports whether the result indexes
// [0, limit).
func truncate(v float64, limit int) (int, bool) {
	if !(v > -1 && v < float64(limit)) {
		return 0, false
	}
	return int(v), true
}
