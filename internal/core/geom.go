// Package core provides fundamental types and utilities for the starfighter
// scene. It contains no terminal dependencies (especially no Bubble Tea) to
// keep the simulation pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle on the character grid.
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

// Approach moves current toward target by exponential smoothing.
// The blend factor is rate*dt, capped at 1 so large frames land on target.
func Approach(current, target, rate, dt float64) float64 {
	t := ClampF(rate*dt, 0, 1)
	return current + (target-current)*t
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// NearlyEqual reports whether a and b differ by less than eps.
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}
