package layerblit

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/draw"     // replace by "image/draw" at some point
	"golang.org/x/image/math/f64" // replace by "image/math/f64" at some point
	"golang.org/x/image/tiff"

	"github.com/mkreel/layerblit/pkg/assets"
)

// LoadFilesAndDirs walks the args: YAML files configure the
// composition (and pull in the layer files they name), bare image
// files become centered natural-size layers, directories recurse.
func (cmp *Composition)LoadFilesAndDirs(args ...string) error {
	for _, arg := range args {
		item, err := os.Stat(arg)

		switch {

		case err != nil:
			return fmt.Errorf("load %s: %v", arg, err)

		case item.IsDir():
			contents, err := os.ReadDir(arg)
			if err != nil {
				return fmt.Errorf("readdir %s: %v", arg, err)
			}
			for _, content := range contents {
				if err := cmp.LoadFilesAndDirs(filepath.Join(arg, content.Name())); err != nil {
					return fmt.Errorf("load %s: %v", arg, err)
				}
			}

		default: // is a file, load it
			if err := cmp.loadFile(arg); err != nil {
				return fmt.Errorf("loadfile %s: %v", arg, err)
			}
		}
	}

	return nil
}

func (cmp *Composition)loadFile(filename string) error {
	ext := filepath.Ext(filename)

	switch strings.ToLower(ext) {

	case ".yaml", ".yml":
		cfg, err := loadConfig(filename)
		if err != nil {
			return fmt.Errorf("loading %s as config YAML failed: %v", filename, err)
		}
		// The CLI may have asked for placeholders before any config
		// existed; don't let the file un-ask.
		placeholders := cmp.Config.Placeholders
		cmp.Config = cfg
		if placeholders {
			cmp.Config.Placeholders = true
		}
		log.Printf("Loaded composition config from %s\n", filename)

		// The config's layer stack references its files relative to
		// the config file itself.
		dir := filepath.Dir(filename)
		for i, lc := range cmp.Config.Layers {
			layer, err := cmp.loadLayer(lc, dir, i)
			if err != nil {
				return err
			}
			cmp.AddLayer(layer)
		}

	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		lc := LayerConfig{
			Name:    strings.TrimSuffix(filepath.Base(filename), ext),
			File:    filename,
			AnchorX: 0.5, AnchorY: 0.5,
			ShiftX: 0.5, ShiftY: 0.5,
			Scale: 1.0,
			Gamma: 2.2,
		}
		layer, err := cmp.loadLayer(lc, "", len(cmp.Layers))
		if err != nil {
			return err
		}
		cmp.AddLayer(layer)
	}

	return nil
}

func loadConfig(filename string) (Config, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %v", filename, err)
	}

	return newConfigFromYaml(contents)
}

// loadLayer builds the Layer for one config entry, decoding its image
// into a Texture. A missing file becomes a generated gradient
// placeholder when the config allows it, so a composition can be
// roughed out before its assets exist.
func (cmp *Composition)loadLayer(lc LayerConfig, dir string, index int) (Layer, error) {
	l := lc.ToLayer()

	filename := lc.File
	if dir != "" && !filepath.IsAbs(filename) {
		filename = filepath.Join(dir, filename)
	}
	l.LoadFilename = filename

	mode := AddressClamp
	if lc.Repeat {
		mode = AddressWrap
	}

	img, err := decodeImage(filename)
	if err != nil {
		if os.IsNotExist(err) && cmp.Config.Placeholders {
			log.Printf("Layer %q: %s missing, generating placeholder\n", l.Filename(), filename)
			img = assets.RadialGradient(256, 256, float64(index)*67.0, 0.04)
			img = assets.Label(img, l.Filename())
		} else {
			return l, fmt.Errorf("layer %q: %v", lc.Name, err)
		}
	}

	if lc.Fit {
		img = fitToResolution(img, cmp.Config.Width, cmp.Config.Height)
	}

	l.Texture = NewTexture(img, mode)
	return l, nil
}

func decodeImage(filename string) (image.Image, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	switch strings.ToLower(filepath.Ext(filename)) {

	case ".png":
		return png.Decode(reader)

	case ".jpg", ".jpeg":
		img, err := jpeg.Decode(reader)
		if err != nil {
			return nil, fmt.Errorf("jpeg decode '%s': %v", filename, err)
		}
		return applyExifOrientation(filename, img), nil

	case ".tif", ".tiff":
		return tiff.Decode(reader)
	}

	return nil, fmt.Errorf("unhandled image extension '%s'", filename)
}

// applyExifOrientation re-reads the file for its EXIF block and bakes
// any camera orientation into the pixels. Phone-camera JPEGs usually
// need this. Absent or unparseable EXIF means the image is fine as-is.
func applyExifOrientation(filename string, img image.Image) image.Image {
	reader, err := os.Open(filename)
	if err != nil {
		return img
	}
	defer reader.Close()

	ex, err := exif.Decode(reader)
	if err != nil {
		return img
	}
	tag, err := ex.Get(exif.Orientation)
	if err != nil {
		return img
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return img
	}

	return orientImage(img, orientation)
}

// orientImage applies one of the eight EXIF orientations as an exact
// pixel shuffle. The matrices map source points to destination
// points, per x/image/draw's Transform convention.
func orientImage(img image.Image, orientation int) image.Image {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	var m f64.Aff3
	swap := false

	switch orientation {
	case 2: m = f64.Aff3{-1, 0, w,   0, 1, 0}            // mirror
	case 3: m = f64.Aff3{-1, 0, w,   0, -1, h}           // rotate 180
	case 4: m = f64.Aff3{1, 0, 0,    0, -1, h}           // flip vertical
	case 5: m, swap = f64.Aff3{0, 1, 0,   1, 0, 0}, true  // transpose
	case 6: m, swap = f64.Aff3{0, -1, h,  1, 0, 0}, true  // rotate 90 CW
	case 7: m, swap = f64.Aff3{0, -1, h,  -1, 0, w}, true // transverse
	case 8: m, swap = f64.Aff3{0, 1, 0,   -1, 0, w}, true // rotate 270 CW
	default:
		return img
	}

	outW, outH := b.Dx(), b.Dy()
	if swap {
		outW, outH = outH, outW
	}

	dst := image.NewNRGBA(image.Rect(0, 0, outW, outH))
	draw.NearestNeighbor.Transform(dst, m, img, b, draw.Src, nil)
	return dst
}

// fitToResolution pre-scales a source image to the canvas resolution,
// the way backgrounds usually want. Catmull-Rom keeps it acceptable
// for downscales too.
func fitToResolution(img image.Image, w, h int) image.Image {
	if b := img.Bounds(); b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
