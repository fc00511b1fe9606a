package layerblit

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 40), uint8(y * 40), 100, 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadBareImageBecomesLayer(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "logo.png")
	writeTestPNG(t, imgPath, 6, 4)

	cmp := NewComposition()
	require.NoError(t, cmp.LoadFilesAndDirs(imgPath))

	require.Len(t, cmp.Layers, 1)
	l := cmp.Layers[0]
	assert.Equal(t, "logo", l.Name)
	assert.Equal(t, 6, l.Texture.Width())
	assert.Equal(t, 4, l.Texture.Height())
	assert.Equal(t, 1.0, l.Scale)
}

func TestLoadConfigPullsInLayerFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "backdrop.png"), 8, 8)

	yml := `
width: 64
height: 64
layers:
  - name: backdrop
    file: backdrop.png
    fit: true
    anchorx: 0.5
    anchory: 0.5
    shiftx: 0.5
    shifty: 0.5
`
	cfgPath := filepath.Join(dir, "comp.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(yml), 0644))

	cmp := NewComposition()
	require.NoError(t, cmp.LoadFilesAndDirs(cfgPath))

	assert.Equal(t, 64, cmp.Config.Width)
	require.Len(t, cmp.Layers, 1)

	// fit pre-scaled the 8x8 source up to the canvas resolution
	assert.Equal(t, 64, cmp.Layers[0].Texture.Width())
	assert.Equal(t, 64, cmp.Layers[0].Texture.Height())
}

func TestLoadMissingLayerFileFails(t *testing.T) {
	dir := t.TempDir()
	yml := `
layers:
  - name: ghost
    file: nope.png
`
	cfgPath := filepath.Join(dir, "comp.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(yml), 0644))

	cmp := NewComposition()
	assert.Error(t, cmp.LoadFilesAndDirs(cfgPath))
}

func TestLoadMissingLayerFileGetsPlaceholder(t *testing.T) {
	dir := t.TempDir()
	yml := `
placeholders: true
layers:
  - name: ghost
    file: nope.png
`
	cfgPath := filepath.Join(dir, "comp.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(yml), 0644))

	cmp := NewComposition()
	require.NoError(t, cmp.LoadFilesAndDirs(cfgPath))
	require.Len(t, cmp.Layers, 1)
	assert.Equal(t, 256, cmp.Layers[0].Texture.Width())
}

func TestOrientImageSwapsDimensions(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})

	// Orientation 6: rotate 90 CW; the top-left pixel ends up top-right
	out := orientImage(img, 6)
	assert.Equal(t, 2, out.Bounds().Dx())
	assert.Equal(t, 4, out.Bounds().Dy())

	r, _, _, _ := out.At(1, 0).RGBA()
	assert.EqualValues(t, 0xFFFF, r)

	// Orientation 1 is a no-op
	assert.Equal(t, image.Image(img), orientImage(img, 1))
}
