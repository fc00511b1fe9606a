package lcolor

import(
	"fmt"
	"image/color"
	"math"

	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/mkreel/layerblit/pkg/lmath"
)

// A Color4 is an RGBA color with float64 channels, nominally in
// [0,1]. Nothing enforces that range: saturation and gamma operations
// may push channels outside it, and only an explicit Saturate pulls
// them back. Alpha is straight (not premultiplied).
type Color4 struct {
	R, G, B, A float64
}

// FromColor maps any color.Color into a Color4, keeping straight
// alpha.
func FromColor(col color.Color) Color4 {
	nrgba := color.NRGBA64Model.Convert(col).(color.NRGBA64)
	return Color4{
		R: float64(nrgba.R) / float64(0xFFFF),
		G: float64(nrgba.G) / float64(0xFFFF),
		B: float64(nrgba.B) / float64(0xFFFF),
		A: float64(nrgba.A) / float64(0xFFFF),
	}
}

// RGBA implements color.Color: clamp, premultiply, widen to 16 bits.
func (c Color4)RGBA() (r, g, b, a uint32) {
	af := lmath.Clamp(c.A, 0, 1)
	r = uint32(lmath.Clamp(c.R, 0, 1) * af * float64(0xFFFF))
	g = uint32(lmath.Clamp(c.G, 0, 1) * af * float64(0xFFFF))
	b = uint32(lmath.Clamp(c.B, 0, 1) * af * float64(0xFFFF))
	a = uint32(af * float64(0xFFFF))
	return
}

// HDRRGB drops the alpha channel for the HDR output codec.
func (c Color4)HDRRGB() hdrcolor.RGB {
	return hdrcolor.RGB{R: c.R, G: c.G, B: c.B}
}

func (c Color4)String() string {
	return fmt.Sprintf("[%12.10f, %12.10f, %12.10f, %12.10f]", c.R, c.G, c.B, c.A)
}

// Over composites `src` atop `dst`, each channel lerped by src's
// alpha - the standard back-to-front "over" fold. Order matters.
// src.A=0 returns dst exactly; src.A=1 returns src exactly.
func Over(src, dst Color4) Color4 {
	return Color4{
		R: lmath.Lerp(dst.R, src.R, src.A),
		G: lmath.Lerp(dst.G, src.G, src.A),
		B: lmath.Lerp(dst.B, src.B, src.A),
		A: lmath.Lerp(dst.A, src.A, src.A),
	}
}

// Saturate scales every channel - alpha included - by `amount`, then
// clamps to [0,1]. Amount 1 is a pure clamp, which is also the last
// thing that has to happen before 8-bit quantization.
func Saturate(c Color4, amount float64) Color4 {
	return Color4{
		R: lmath.Clamp(c.R*amount, 0, 1),
		G: lmath.Clamp(c.G*amount, 0, 1),
		B: lmath.Clamp(c.B*amount, 0, 1),
		A: lmath.Clamp(c.A*amount, 0, 1),
	}
}

// GammaDecode raises every channel to `gamma`, converting a stored
// gamma-encoded color toward linear. The alpha channel gets decoded
// along with the color channels; the blit contract keeps that
// literal even though alpha is not normally gamma-encoded.
func GammaDecode(c Color4, gamma float64) Color4 {
	return Color4{
		R: math.Pow(c.R, gamma),
		G: math.Pow(c.G, gamma),
		B: math.Pow(c.B, gamma),
		A: math.Pow(c.A, gamma),
	}
}
