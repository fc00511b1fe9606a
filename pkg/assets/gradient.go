package assets

// Placeholder texture generation, for roughing out a composition
// before its real assets exist. Radial hue-sweep gradients with a
// little grain, so stacked placeholder layers stay distinguishable.

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/mkreel/layerblit/pkg/lmath"
)

// RadialGradient renders a w x h radial gradient: hue sweeps with
// distance from `baseHue`, the alpha fades out toward the corners,
// and `grain` adds a touch of hash noise. Deterministic for a given
// argument tuple.
func RadialGradient(w, h int, baseHue, grain float64) image.Image {
	dc := gg.NewContext(w, h)

	cx, cy := float64(w)/2.0, float64(h)/2.0
	maxDist := math.Sqrt(cx*cx + cy*cy)

	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			d := math.Sqrt(dx*dx+dy*dy) / maxDist

			hue := math.Mod(baseHue + d*120.0 + 360.0, 360.0)
			col := colorful.Hsv(hue, 0.75, 1.0 - 0.4*d).Clamped()

			n := (lmath.Rand(float64(y*w+x)) - 0.5) * grain

			dc.SetRGBA(
				lmath.Clamp(col.R+n, 0, 1),
				lmath.Clamp(col.G+n, 0, 1),
				lmath.Clamp(col.B+n, 0, 1),
				lmath.Clamp(1.0-d, 0, 1),
			)
			dc.SetPixel(x, y)
		}
	}

	return dc.Image()
}

// Label stamps a name onto a generated asset so previews identify
// which placeholder is which.
func Label(img image.Image, label string) image.Image {
	dc := gg.NewContextForImage(img)
	dc.SetRGB(1, 1, 1)
	dc.DrawString(label, 8, 16)
	return dc.Image()
}
