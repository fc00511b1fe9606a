package lmath

import "math"

// Some functions that only operate on basic types, that are useful

// Fract is the GLSL fractional part: f - floor(f). Always in [0,1)
// for finite inputs.
func Fract(f float64) float64 {
	return f - math.Floor(f)
}

func Clamp(f, min, max float64) float64 {
	if f < min { return min }
	if f > max { return max }
	return f
}

func Lerp(a, b, t float64) float64 {
	return a*(1.0-t) + b*t
}

// Proportion solves "a is to b as c is to what": c*b/a. There is no
// error channel; a=0 propagates a non-finite value into the caller's
// pixels instead of failing.
func Proportion(a, b, c float64) float64 {
	return c * b / a
}

// SmoothAtan2 approximates atan2(y,x) while staying smooth near the
// axis poles, for continuous angular fields (polar effects). It picks
// atan2(y,x) when |x|>|y|, and the complementary pi/2 - atan2(x,y)
// otherwise, so neither formula is ever evaluated near its own pole.
//
// Not bit-identical to math.Atan2: in the third quadrant it returns
// the +2pi branch, and behavior at (0,0) is unspecified. Compare
// results modulo 2pi.
func SmoothAtan2(y, x float64) float64 {
	if math.Abs(x) > math.Abs(y) {
		return math.Atan2(y, x)
	}
	return math.Pi/2.0 - math.Atan2(x, y)
}
