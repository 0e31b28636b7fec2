// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on a Screen.
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

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: Max(r.W-2*n, 0), H: Max(r.H-2*n, 0)}
}

// Viewport maps a continuous world of WorldW x WorldH units onto a cell
// rectangle of the screen.
type Viewport struct {
	WorldW, WorldH float64
	Area           Rect
}

// ToCell converts a world position to the screen cell containing it.
// ok is false when the position falls outside the viewport area.
func (v Viewport) ToCell(p Vector2) (x, y int, ok bool) {
	if v.WorldW <= 0 || v.WorldH <= 0 || v.Area.W <= 0 || v.Area.H <= 0 {
		return 0, 0, false
	}
	cx := int(math.Floor(p.X / v.WorldW * float64(v.Area.W)))
	cy := int(math.Floor(p.Y / v.WorldH * float64(v.Area.H)))
	x, y = v.Area.X+cx, v.Area.Y+cy
	return x, y, v.Area.Contains(x, y)
}

// ToWorld converts a screen cell to the world position at its center.
// Cells outside the area are clamped to the nearest edge.
func (v Viewport) ToWorld(x, y int) Vector2 {
	if v.Area.W <= 0 || v.Area.H <= 0 {
		return Vector2{}
	}
	cx := Clamp(x-v.Area.X, 0, v.Area.W-1)
	cy := Clamp(y-v.Area.Y, 0, v.Area.H-1)
	return Vector2{
		X: (float64(cx) + 0.5) * v.WorldW / float64(v.Area.W),
		Y: (float64(cy) + 0.5) * v.WorldH / float64(v.Area.H),
	}
}

// CellSize returns how many cells a world extent covers, at least one.
func (v Viewport) CellSize(w, h float64) (int, int) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 1, 1
	}
	cw := int(math.Round(w / v.WorldW * float64(v.Area.W)))
	ch := int(math.Round(h / v.WorldH * float64(v.Area.H)))
	return Max(cw, 1), Max(ch, 1)
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
