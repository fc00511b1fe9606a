package lmath

import "math"

// Stepper functions for walking a value between two points across
// frames. The frame loop decides which stepper a layer animates with.

// LinearStep walks from a to b in `total` even steps, returning the
// value at step `current`.
func LinearStep(a, b float64, current, total int) float64 {
	part := (b - a) / float64(total)
	return a + part*float64(current)
}

// RemainingApproach moves `current` a fixed ratio of its remaining
// distance toward `target`. Biased: fast at first, asymptotic near
// the target. Ratio 1 jumps straight there, ratio 0 never moves.
func RemainingApproach(target, current, ratio float64) float64 {
	return current + (target-current)*ratio
}

// Sigmoid maps x in [0,1] onto an S-curve; `smooth` controls how
// sharp the middle transition is.
func Sigmoid(x, smooth float64) float64 {
	return 1.0 / (1.0 + math.Exp(-(x*2.0-1.0)*smooth))
}

// SigmoidStep is LinearStep with the walk eased through a sigmoid.
func SigmoidStep(a, b float64, current, total int, smooth float64) float64 {
	where := Proportion(float64(total), 1, float64(current))
	return a + (b-a)*Sigmoid(where, smooth)
}
