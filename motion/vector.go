package motion

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Vector is a velocity in up to three axes. Planar engines leave Z at zero.
type Vector f64.Vec3

// Vec3 builds a spatial vector.
func Vec3(x, y, z float64) Vector {
	return Vector{x, y, z}
}

// Vec2 builds a planar vector.
func Vec2(x, y float64) Vector {
	return Vector{x, y, 0}
}

func (v Vector) X() float64 { return v[0] }
func (v Vector) Y() float64 { return v[1] }
func (v Vector) Z() float64 { return v[2] }

func (v Vector) Add(o Vector) Vector {
	return Vector{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{v[0] * s, v[1] * s, v[2] * s}
}

// Mul multiplies componentwise.
func (v Vector) Mul(o Vector) Vector {
	return Vector{v[0] * o[0], v[1] * o[1], v[2] * o[2]}
}

func (v Vector) Dot(o Vector) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

func (v Vector) SqrMagnitude() float64 {
	return v.Dot(v)
}

func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.SqrMagnitude())
}

// Normalized returns the unit vector in the direction of v, or the zero vector
// when v is too short to have a direction.
func (v Vector) Normalized() Vector {
	m := v.Magnitude()
	if m <= 1e-9 {
		return Vector{}
	}
	return v.Scale(1 / m)
}

// ApproxEqual reports whether every component of v is within eps of o.
func (v Vector) ApproxEqual(o Vector, eps float64) bool {
	for i := range v {
		if math.Abs(v[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

// MaxMagnitude returns whichever of a and b is longer. Ties keep a.
func MaxMagnitude(a, b Vector) Vector {
	if b.SqrMagnitude() > a.SqrMagnitude() {
		return b
	}
	return a
}
