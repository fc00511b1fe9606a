package layerblit

// The core of the compositor: map a destination UV through an
// aspect-corrected rotate/scale/anchor/shift transform into a source
// sample UV, apply the bounds policy, sample, and optionally
// gamma-decode.

import(
	"fmt"
	"math"

	"github.com/mkreel/layerblit/pkg/lcolor"
	"github.com/mkreel/layerblit/pkg/lmath"
)

// A BlitTransform holds the placement parameters for one BlitImage
// call. Scale must be nonzero: zero divides out to non-finite sample
// coordinates. That's a precondition violation, not a signaled error;
// it shows up as broken pixels, never as a crash.
type BlitTransform struct {
	Anchor    lmath.Vec2 // UV-space pivot of the rotation/scale
	Shift     lmath.Vec2 // UV-space offset applied after the transform
	Scale     float64    // magnification; 1 = natural size
	Angle     float64    // radians, unrestricted
	Repeat    bool       // false: samples outside [0,1] leave the canvas untouched
	UndoGamma bool       // gamma-decode the sampled color
	Gamma     float64    // exponent, used only when UndoGamma is set
}

func (bt BlitTransform)String() string {
	str := fmt.Sprintf("Blit[anchor%s shift%s x%.3f", bt.Anchor, bt.Shift, bt.Scale)
	if bt.Angle != 0.0 {
		str += fmt.Sprintf(" %5.2frad", bt.Angle)
	}
	if bt.Repeat {
		str += " repeat"
	}
	return str + "]"
}

// BlitImage maps the destination coordinate `uv` to a sample
// coordinate in `tex` and returns the sampled (and optionally
// gamma-decoded) color. With Repeat off, a sample coordinate with
// either component outside the closed interval [0,1] short-circuits
// and returns `canvas` unchanged - no sampling happens. With Repeat
// on, the texture's own wrap addressing takes over.
//
// Compositing the result back onto the canvas is the caller's job
// (lcolor.Over), as is layer ordering.
func BlitImage(canvas lcolor.Color4, tex *Texture, uv lmath.Vec2, bt BlitTransform) lcolor.Color4 {
	res    := tex.Resolution()
	ratioY := res[1] / res[0]
	ratioX := res[0] / res[1]

	// Widen the scale factor to counteract the horizontal stretch a
	// non-square image would otherwise get.
	effScale := bt.Scale * ratioX

	// The negated Y term flips between the destination's bottom-up
	// convention and the image's top-down sampling convention.
	scaleM := lmath.Mat2{
		(1.0 / effScale) * ratioX, 0,
		0, -(1.0 / effScale),
	}

	// An anisotropically corrected rotation; a plain rotation matrix
	// would skew the region on non-square aspect ratios.
	cos := math.Cos(bt.Angle)
	sin := math.Sin(bt.Angle)
	rotM := lmath.Mat2{
		cos / ratioX, sin,
		-1 * sin, cos / ratioY,
	}

	sampleUV := rotM.Apply(scaleM.Apply(uv.Sub(bt.Anchor))).Add(bt.Shift)

	if !bt.Repeat {
		if sampleUV[0] < 0 || sampleUV[0] > 1 || sampleUV[1] < 0 || sampleUV[1] > 1 {
			return canvas
		}
	}

	c := tex.Sample(sampleUV)
	if bt.UndoGamma {
		c = lcolor.GammaDecode(c, bt.Gamma)
	}
	return c
}
