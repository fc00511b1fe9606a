package layerblit

// Whole-canvas post effects, applied after the layer fold and before
// the final saturate.

import (
	"math"

	"github.com/mkreel/layerblit/pkg/lcolor"
	"github.com/mkreel/layerblit/pkg/lmath"
)

// Grain perturbs the color channels with hash noise, a cheap film
// grain / dither. Seeding with the frame number keeps the grain
// moving between frames; within a frame it's fully deterministic.
func Grain(c lcolor.Color4, uv lmath.Vec2, seed, strength float64) lcolor.Color4 {
	n := lmath.Noise2(lmath.Vec2{uv[0] + seed*0.1237, uv[1] - seed*0.2917}) - 0.5
	return lcolor.Color4{
		R: c.R + n*strength,
		G: c.G + n*strength,
		B: c.B + n*strength,
		A: c.A,
	}
}

// SectorSweep darkens the canvas by angular sector around the center.
// The smoothed atan2 keeps the angular field continuous across the
// axis poles, so the shading has no seams along the axes.
func SectorSweep(c lcolor.Color4, uv lmath.Vec2, sectors int, strength float64) lcolor.Color4 {
	theta := lmath.SmoothAtan2(uv[1]-0.5, uv[0]-0.5)
	phase := lmath.Fract(theta / (2.0 * math.Pi) * float64(sectors))
	k := 1.0 - strength*phase
	return lcolor.Color4{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A}
}
