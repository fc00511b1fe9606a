package lmath

// The 2D vector and 2x2 matrix operations the blit transform needs.
// Deliberately not a general linear algebra layer; only the exact
// operations the compositor uses.

import(
	"fmt"
	"math"

	"golang.org/x/image/math/f64"  // Will be "image/math/f64" at some point, hopefully
)

// Use a local type so we can hang methods off it
type Vec2 f64.Vec2

func (v Vec2)Add(w Vec2) Vec2      { return Vec2{v[0] + w[0], v[1] + w[1]} }
func (v Vec2)Sub(w Vec2) Vec2      { return Vec2{v[0] - w[0], v[1] - w[1]} }
func (v Vec2)Scale(k float64) Vec2 { return Vec2{v[0] * k, v[1] * k} }
func (v Vec2)Dot(w Vec2) float64   { return v[0]*w[0] + v[1]*w[1] }

func (v Vec2)String() string {
	return fmt.Sprintf("[%12.10f, %12.10f]", v[0], v[1])
}

// A Mat2 is row-major: {m00, m01, m10, m11}
type Mat2 [4]float64

func Identity() Mat2 {
	return Mat2{1, 0,   0, 1}
}

func (a Mat2)Mult(b Mat2) Mat2 {
	return Mat2{
		a[0]*b[0] + a[1]*b[2],
		a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2],
		a[2]*b[1] + a[3]*b[3],
	}
}

func (m Mat2)Apply(v Vec2) Vec2 {
	return Vec2{
		m[0]*v[0] + m[1]*v[1],
		m[2]*v[0] + m[3]*v[1],
	}
}

func (m Mat2)Det() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

func (m Mat2)String() string {
	str := fmt.Sprintf("[%10f, %10f]\n", m[0], m[1])
	str += fmt.Sprintf("[%10f, %10f]\n", m[2], m[3])
	return str
}

// Rotate builds the rotation matrix for `theta` radians. Defined for
// all reals, 2pi-periodic.
func Rotate(theta float64) Mat2 {
	cosTheta := math.Cos(theta)
	sinTheta := math.Sin(theta)
	return Mat2{cosTheta, sinTheta,   -1*sinTheta, cosTheta}
}
