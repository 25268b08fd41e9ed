// Package chaos plots the Sierpinski triangle with the chaos game: a point
// repeatedly jumps halfway towards a randomly chosen triangle vertex.
package chaos

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Border is the inward margin between the buffer edge and the triangle.
const Border = 20

// Point is a position in buffer-pixel space.
type Point = vec.Vec2

// Triangle holds the apex, bottom-left and bottom-right vertices.
type Triangle [3]Point

// NewTriangle spans a buffer of the given size, inset by Border.
func NewTriangle(width, height int) Triangle {
	w, h, b := float64(width), float64(height), float64(Border)
	return Triangle{
		{X: w / 2, Y: b},
		{X: b, Y: h - b},
		{X: w - b, Y: h - b},
	}
}

// Start is the initial point: the centre of the buffer.
func Start(width, height int) Point {
	return Point{X: float64(width) / 2, Y: float64(height) / 2}
}

// Centroid returns the mean of the three vertices.
func (t Triangle) Centroid() Point {
	return t[0].Add(t[1]).Add(t[2]).Mul(1.0 / 3)
}

// Contains reports whether p lies inside the triangle or within tol of
// each of its edges.
func (t Triangle) Contains(p Point, tol float64) bool {
	area := cross(t[0], t[1], t[2])
	if area == 0 {
		return false
	}
	sign := 1.0
	if area < 0 {
		sign = -1
	}
	for i := range t {
		a, b := t[i], t[(i+1)%3]
		edge := b.Sub(a)
		length := math.Hypot(edge.X, edge.Y)
		if length == 0 {
			return false
		}
		// signed distance of p from edge a->b, positive inside
		d := sign * cross(a, b, p) / length
		if d < -tol {
			return false
		}
	}
	return true
}

func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
