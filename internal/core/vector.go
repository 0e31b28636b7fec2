package core

import (
	"errors"
	"math"
)

// ErrDegenerateVector is returned when an operation needs a direction but
// the vector has zero length (normalizing, measuring an angle).
var ErrDegenerateVector = errors.New("degenerate vector")

// Up is the facing direction for an angle of 0 degrees.
// Screen space: y grows downward.
var Up = Vector2{X: 0, Y: -1}

// Vector2 is a 2D point or direction in world units.
type Vector2 struct {
	X, Y float64
}

// Vec creates a vector from its components.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul multiplies component-wise.
func (v Vector2) Mul(o Vector2) Vector2 {
	return Vector2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Scale multiplies both components by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div divides both components by s.
func (v Vector2) Div(s float64) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// DivVec divides component-wise.
func (v Vector2) DivVec(o Vector2) Vector2 {
	return Vector2{X: v.X / o.X, Y: v.Y / o.Y}
}

// Len returns the Euclidean length.
func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo returns the distance between two points.
func (v Vector2) DistanceTo(o Vector2) float64 {
	return v.Sub(o).Len()
}

// Dot returns the dot product.
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalized returns the unit vector with the same direction.
// Fails with ErrDegenerateVector on the zero vector instead of inventing
// a direction.
func (v Vector2) Normalized() (Vector2, error) {
	l := v.Len()
	if l == 0 {
		return Vector2{}, ErrDegenerateVector
	}
	return Vector2{X: v.X / l, Y: v.Y / l}, nil
}

// AngleTo returns the unsigned angle between v and o in radians.
// Either operand having zero length yields ErrDegenerateVector.
func (v Vector2) AngleTo(o Vector2) (float64, error) {
	denom := v.Len() * o.Len()
	if denom == 0 {
		return 0, ErrDegenerateVector
	}
	// Rounding can push the cosine a hair past ±1.
	cos := ClampF(v.Dot(o)/denom, -1, 1)
	return math.Acos(cos), nil
}

// Rotate rotates v about the origin by deg degrees using the standard
// rotation matrix.
func (v Vector2) Rotate(deg float64) Vector2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// RotateAround rotates v about origin by deg degrees.
func (v Vector2) RotateAround(deg float64, origin Vector2) Vector2 {
	return v.Sub(origin).Rotate(deg).Add(origin)
}

// ApproxEqual reports whether both components differ by at most eps.
func (v Vector2) ApproxEqual(o Vector2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Heading returns the unit direction for a facing angle.
// 0 degrees faces Up and positive angles turn toward -x, the same
// convention FacingAngle produces.
func Heading(deg float64) Vector2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vector2{X: -sin, Y: -cos}
}

// FacingAngle converts a non-zero direction to a facing angle in degrees,
// measured from Up and mirrored when the direction points toward +x.
func FacingAngle(dir Vector2) (float64, error) {
	rad, err := dir.AngleTo(Up)
	if err != nil {
		return 0, err
	}
	deg := rad * 180 / math.Pi
	if dir.X > 0 {
		deg = -deg
	}
	return deg, nil
}
