// Package core provides fundamental types and utilities shared by the game
// simulation and the terminal platform. It has no Bubble Tea dependency so
// the simulation stays pure and testable.
package core

// Rect represents an integer rectangle in screen cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// AABB is an axis-aligned bounding box in world units.
// Edges are stored directly because hitboxes are built from edges.
type AABB struct {
	Left, Top, Right, Bottom float64
}

// NewAABB creates a box from a top-left corner and a size.
func NewAABB(x, y, w, h float64) AABB {
	return AABB{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Shrink returns the box moved inward by m on every side.
func (b AABB) Shrink(m float64) AABB {
	return AABB{Left: b.Left + m, Top: b.Top + m, Right: b.Right - m, Bottom: b.Bottom - m}
}

// Intersects reports strict overlap on both axes. Touching edges do not count.
func (b AABB) Intersects(o AABB) bool {
	return b.Right > o.Left &&
		b.Left < o.Right &&
		b.Bottom > o.Top &&
		b.Top < o.Bottom
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
