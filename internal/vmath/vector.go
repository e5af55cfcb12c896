// Package vmath holds the 2D float vector helpers shared by motion and AI.
package vmath

import "math"

// Vector is a 2D world-space vector.
type Vector struct {
	X, Y float32
}

func New(x, y float32) Vector { return Vector{X: x, Y: y} }

// FromPolar returns a vector of the given length pointing along angle (radians).
func FromPolar(length, angle float32) Vector {
	s, c := math.Sincos(float64(angle))
	return Vector{X: length * float32(c), Y: length * float32(s)}
}

func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }

func (v Vector) Scale(f float32) Vector { return Vector{v.X * f, v.Y * f} }

// MagnitudeSq returns squared length without sqrt.
func (v Vector) MagnitudeSq() float32 { return v.X*v.X + v.Y*v.Y }

func (v Vector) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.MagnitudeSq())))
}

// MagnitudeCmp compares |v| against r using squares: 1 if longer, -1 if
// shorter, 0 if equal.
func (v Vector) MagnitudeCmp(r float32) int {
	m, rr := v.MagnitudeSq(), r*r
	switch {
	case m > rr:
		return 1
	case m < rr:
		return -1
	}
	return 0
}

// WithMagnitude rescales v to length m. A zero vector stays zero.
func (v Vector) WithMagnitude(m float32) Vector {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector{}
	}
	return v.Scale(m / mag)
}

// Theta returns the angle of v in radians, in (-π, π].
func (v Vector) Theta() float32 {
	return float32(math.Atan2(float64(v.Y), float64(v.X)))
}

func (v Vector) IsZero() bool { return v.X == 0 && v.Y == 0 }

// DistanceSq returns the squared distance between two points.
func DistanceSq(a, b Vector) float32 { return a.Sub(b).MagnitudeSq() }

// Clamp limits f to [lo, hi].
func Clamp(f, lo, hi float32) float32 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
