package layerblit

import(
	"image"

	"github.com/mkreel/layerblit/pkg/lcolor"
	"github.com/mkreel/layerblit/pkg/lmath"
)

// An AddressMode decides what a Texture does with a sample coordinate
// outside [0,1]: clamp to the edge texel, or wrap around. It's a
// property of the texture resource; the blit transform never does
// wrap math of its own.
type AddressMode int

const (
	AddressClamp AddressMode = iota
	AddressWrap
)

// A Texture is a fixed-resolution grid of texels, addressed by a
// normalized UV coordinate with point (non-filtered) sampling. The
// texel data is immutable once built, so sampling is safe from any
// number of goroutines.
type Texture struct {
	Address AddressMode

	w, h   int
	texels []lcolor.Color4
}

// NewTexture snapshots an image.Image into texels. Straight alpha is
// preserved.
func NewTexture(img image.Image, mode AddressMode) *Texture {
	b := img.Bounds()
	t := &Texture{
		Address: mode,
		w:       b.Dx(),
		h:       b.Dy(),
		texels:  make([]lcolor.Color4, b.Dx()*b.Dy()),
	}
	for y:=0; y<t.h; y++ {
		for x:=0; x<t.w; x++ {
			t.texels[y*t.w + x] = lcolor.FromColor(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return t
}

// NewUniformTexture builds a solid-color texture, handy for flat
// background layers (and for exact-value tests).
func NewUniformTexture(w, h int, col lcolor.Color4, mode AddressMode) *Texture {
	t := &Texture{Address: mode, w: w, h: h, texels: make([]lcolor.Color4, w*h)}
	for i := range t.texels {
		t.texels[i] = col
	}
	return t
}

func (t *Texture)Width() int  { return t.w }
func (t *Texture)Height() int { return t.h }

// Resolution is the nominal (w,h), used only for aspect-ratio math.
// Both components are strictly positive for any constructed Texture.
func (t *Texture)Resolution() lmath.Vec2 {
	return lmath.Vec2{float64(t.w), float64(t.h)}
}

// Sample point-samples the texel under `uv`, applying the texture's
// address mode. Non-finite coordinates land on the edge texel rather
// than panicking; the caller's math is what went wrong.
func (t *Texture)Sample(uv lmath.Vec2) lcolor.Color4 {
	u, v := uv[0], uv[1]

	switch t.Address {
	case AddressWrap:
		u = lmath.Fract(u)
		v = lmath.Fract(v)
	default:
		u = lmath.Clamp(u, 0, 1)
		v = lmath.Clamp(v, 0, 1)
	}

	x := int(u * float64(t.w))
	y := int(v * float64(t.h))
	if x < 0     { x = 0 }
	if x >= t.w  { x = t.w - 1 }
	if y < 0     { y = 0 }
	if y >= t.h  { y = t.h - 1 }

	return t.texels[y*t.w + x]
}
