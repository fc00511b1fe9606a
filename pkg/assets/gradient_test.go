package assets

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadialGradientShape(t *testing.T) {
	img := RadialGradient(32, 16, 0, 0)
	require.Equal(t, 32, img.Bounds().Dx())
	require.Equal(t, 16, img.Bounds().Dy())

	// Center is bright and opaque, corners fade out
	_, _, _, centerA := img.At(16, 8).RGBA()
	_, _, _, cornerA := img.At(0, 0).RGBA()
	assert.Greater(t, centerA, cornerA)
}

func TestRadialGradientIsDeterministic(t *testing.T) {
	a := RadialGradient(16, 16, 210, 0.05)
	b := RadialGradient(16, 16, 210, 0.05)
	for _, p := range []image.Point{{0, 0}, {8, 8}, {15, 3}} {
		require.Equal(t, a.At(p.X, p.Y), b.At(p.X, p.Y), "pixel %v", p)
	}
}

func TestRadialGradientHueVaries(t *testing.T) {
	a := RadialGradient(16, 16, 0, 0)
	b := RadialGradient(16, 16, 180, 0)
	assert.NotEqual(t, a.At(8, 8), b.At(8, 8))
}

func TestLabelKeepsDimensions(t *testing.T) {
	img := RadialGradient(64, 32, 90, 0)
	labeled := Label(img, "backdrop")
	assert.Equal(t, img.Bounds(), labeled.Bounds())
}
