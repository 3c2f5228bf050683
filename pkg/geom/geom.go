// Package geom holds the small amount of 2D geometry the gesture pipeline
// needs: points used as positions and displacement vectors, axis-aligned
// rectangles for hit-testing, and a tolerance comparison for floats.
package geom

import "math"

// Point is a 2D coordinate or displacement in surface-local pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by k on both axes.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Len returns the Euclidean length of p treated as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Unit returns p scaled to length 1. The zero vector has no direction and
// is returned unchanged.
func (p Point) Unit() Point {
	l := p.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Dist returns the distance between a and b.
func Dist(a, b Point) float64 {
	return b.Sub(a).Len()
}

// ApproxEqual reports whether a and b differ by at most tolerance.
func ApproxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// Rect is an axis-aligned rectangle. Left/Top are inclusive and
// Right/Bottom exclusive, matching how host toolkits report view frames.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectXYWH builds a Rect from an origin and a size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.Left, Y: r.Top}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return !r.Empty() &&
		p.X >= r.Left && p.X < r.Right &&
		p.Y >= r.Top && p.Y < r.Bottom
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// MoveTo returns r translated so its origin is at p.
func (r Rect) MoveTo(p Point) Rect {
	return r.Offset(p.X-r.Left, p.Y-r.Top)
}
