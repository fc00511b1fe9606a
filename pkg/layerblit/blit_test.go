package layerblit

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkreel/layerblit/pkg/lcolor"
	"github.com/mkreel/layerblit/pkg/lmath"
)

// markerTexture builds a black w x h texture with single white pixels
// at the given points, so tests can see exactly where a blit sampled.
func markerTexture(w, h int, marks []image.Point) *Texture {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{0, 0, 0, 255})
		}
	}
	for _, p := range marks {
		img.SetNRGBA(p.X, p.Y, color.NRGBA{255, 255, 255, 255})
	}
	return NewTexture(img, AddressClamp)
}

func centeredTransform() BlitTransform {
	return BlitTransform{
		Anchor: lmath.Vec2{0.5, 0.5},
		Shift:  lmath.Vec2{0.5, 0.5},
		Scale:  1.0,
	}
}

// Square image, centered anchor/shift, no rotation: the destination
// center must map to the image center.
func TestBlitCenterMapsToCenter(t *testing.T) {
	tex := markerTexture(100, 100, []image.Point{{50, 50}})
	canvas := lcolor.Color4{R: 0.1, G: 0.1, B: 0.1, A: 1}

	got := BlitImage(canvas, tex, lmath.Vec2{0.5, 0.5}, centeredTransform())
	assert.InDelta(t, 1.0, got.R, 1e-9, "expected the white marker at the image center")
}

// Same setup at uv=(0,0): the Y flip sends it to sampleUV=(0,1),
// which is on the closed boundary, so sampling still happens - at the
// bottom-left texel.
func TestBlitCornerHitsFlippedCorner(t *testing.T) {
	tex := markerTexture(100, 100, []image.Point{{0, 99}})
	canvas := lcolor.Color4{R: 0.1, G: 0.1, B: 0.1, A: 1}

	got := BlitImage(canvas, tex, lmath.Vec2{0, 0}, centeredTransform())
	assert.InDelta(t, 1.0, got.R, 1e-9, "expected the marker at the flipped corner")
}

// Out-of-bounds sample with repeat off returns the canvas unchanged,
// bit for bit.
func TestBlitOutOfBoundsReturnsCanvasUnchanged(t *testing.T) {
	tex := markerTexture(100, 100, nil)
	canvas := lcolor.Color4{R: 0.123, G: 0.456, B: 0.789, A: 0.5}

	bt := centeredTransform()
	bt.Shift = lmath.Vec2{2, 2} // sampleUV lands way outside [0,1]

	got := BlitImage(canvas, tex, lmath.Vec2{0.5, 0.5}, bt)
	require.Equal(t, canvas, got)
}

// With repeat on, the same out-of-bounds shift wraps around through
// the texture's addressing instead of short-circuiting.
func TestBlitRepeatWraps(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 255})
	tex := NewTexture(img, AddressWrap)

	bt := centeredTransform()
	bt.Repeat = true
	bt.Shift = lmath.Vec2{2.25, 2.25} // fract -> (0.25, 0.25) -> top-left texel

	got := BlitImage(lcolor.Color4{}, tex, lmath.Vec2{0.5, 0.5}, bt)
	assert.InDelta(t, 1.0, got.R, 1e-9)
	assert.InDelta(t, 0.0, got.G, 1e-9)
}

// Scale 2 halves the sampled extent: uv 0.25 right of the anchor
// lands 0.125 right of the shift.
func TestBlitScaleMagnifies(t *testing.T) {
	tex := markerTexture(100, 100, []image.Point{{62, 50}}) // int(0.625*100)
	bt := centeredTransform()
	bt.Scale = 2.0

	got := BlitImage(lcolor.Color4{}, tex, lmath.Vec2{0.75, 0.5}, bt)
	assert.InDelta(t, 1.0, got.R, 1e-9)
}

// Rotating a quarter turn sends a point right of the anchor below the
// shift (after the Y flip).
func TestBlitQuarterTurn(t *testing.T) {
	tex := markerTexture(100, 100, []image.Point{{50, 25}}) // sampleUV (0.5, 0.25)
	bt := centeredTransform()
	bt.Angle = math.Pi / 2

	got := BlitImage(lcolor.Color4{}, tex, lmath.Vec2{0.75, 0.5}, bt)
	assert.InDelta(t, 1.0, got.R, 1e-9)
}

// A 2:1 image: the aspect correction halves the horizontal walk, so
// uv 0.25 right of the anchor still lands 0.125 right of the shift in
// sample space.
func TestBlitAspectCorrection(t *testing.T) {
	tex := markerTexture(200, 100, []image.Point{{125, 50}}) // int(0.625*200)
	bt := centeredTransform()

	got := BlitImage(lcolor.Color4{}, tex, lmath.Vec2{0.75, 0.5}, bt)
	assert.InDelta(t, 1.0, got.R, 1e-9)
}

// Gamma decode squares every channel of the sampled color, alpha
// included.
func TestBlitUndoGamma(t *testing.T) {
	tex := NewUniformTexture(8, 8, lcolor.Color4{R: 0.25, G: 0.5, B: 1.0, A: 1.0}, AddressClamp)
	bt := centeredTransform()
	bt.UndoGamma = true
	bt.Gamma = 2.0

	got := BlitImage(lcolor.Color4{}, tex, lmath.Vec2{0.5, 0.5}, bt)
	assert.InDelta(t, 0.0625, got.R, 1e-12)
	assert.InDelta(t, 0.25, got.G, 1e-12)
	assert.InDelta(t, 1.0, got.B, 1e-12)
	assert.InDelta(t, 1.0, got.A, 1e-12)
}

// scale=0 is a documented precondition violation: the result is
// non-finite garbage, but it must not panic.
func TestBlitZeroScaleDoesNotPanic(t *testing.T) {
	tex := markerTexture(10, 10, nil)
	bt := centeredTransform()
	bt.Scale = 0
	bt.Repeat = true // force a sample through the non-finite coords

	assert.NotPanics(t, func() {
		BlitImage(lcolor.Color4{}, tex, lmath.Vec2{0.25, 0.25}, bt)
	})
}
