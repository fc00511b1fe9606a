package lmath

import "math"

// The classic fract(sin(x)*bignum) shader hashes. Deterministic,
// land in [0,1), and cheap. Not statistically rigorous and nowhere
// near cryptographic; they exist to feed grain and dither.

func Rand(x float64) float64 {
	return Fract(math.Sin(x) * 43758.5453123)
}

func Noise2(v Vec2) float64 {
	return Fract(math.Sin(v.Dot(Vec2{18.4835183, 59.583596})) * 39758.381532)
}
