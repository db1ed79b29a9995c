// Package core provides fundamental types and utilities shared by the cnake
// simulation and its hosts. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

// Point is a grid cell coordinate. It may lie off the board, which is how a
// wall hit is signalled.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// In reports whether p lies inside the [0,w) x [0,h) board.
func (p Point) In(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Rect represents an axis-aligned rectangle in pixel space.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Circle is a filled disc in pixel space.
type Circle struct {
	X, Y int // Center
	R    int // Radius
}

// Bounds returns the bounding box of the circle.
func (c Circle) Bounds() Rect {
	return Rect{X: c.X - c.R, Y: c.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

// CellRect returns the pixel rectangle covered by grid cell p at the given unit size.
func CellRect(p Point, unit int) Rect {
	return Rect{X: p.X * unit, Y: p.Y * unit, W: unit, H: unit}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// floorDiv divides rounding toward negative infinity, so that pixels left of
// or above the origin map to negative cells.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
