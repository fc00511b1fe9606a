package layerblit

import(
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/fogleman/gg"
	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/mkreel/layerblit/pkg/lcolor"
)

// A Canvas accumulates the composited pixels for one output frame.
// It implements image.Image and hdr.Image, so it can be handed
// straight to the PNG and Radiance-HDR encoders.
type Canvas struct {
	w, h int
	pix  []lcolor.Color4
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{w: w, h: h, pix: make([]lcolor.Color4, w*h)}
}

func (c *Canvas)Pix(x, y int) lcolor.Color4        { return c.pix[y*c.w + x] }
func (c *Canvas)SetPix(x, y int, col lcolor.Color4) { c.pix[y*c.w + x] = col }

// Implement image.Image
func (c *Canvas)ColorModel() color.Model { return hdrcolor.RGBModel }
func (c *Canvas)Bounds() image.Rectangle { return image.Rect(0, 0, c.w, c.h) }
func (c *Canvas)At(x, y int) color.Color { return c.Pix(x, y) }

// Implement hdr.Image
func (c *Canvas)HDRAt(x, y int) hdrcolor.Color { return c.Pix(x, y).HDRRGB() }
func (c *Canvas)Size() int                     { return c.w * c.h }

// ToNRGBA quantizes down to 8-bit straight-alpha RGBA, the layout the
// ffmpeg pipe wants.
func (c *Canvas)ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(c.Bounds())
	for y:=0; y<c.h; y++ {
		for x:=0; x<c.w; x++ {
			p := lcolor.Saturate(c.Pix(x, y), 1.0)
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(p.R*255.0 + 0.5),
				G: uint8(p.G*255.0 + 0.5),
				B: uint8(p.B*255.0 + 0.5),
				A: uint8(p.A*255.0 + 0.5),
			})
		}
	}
	return img
}

func (c *Canvas)WritePNG(filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return png.Encode(writer, c.ToNRGBA())
	}
}

// WriteHDR outputs a Radiance RGBE image, so frames can go through
// external HDR tooling before final encoding.
func (c *Canvas)WriteHDR(filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("Canvas.WriteHDR, open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return rgbe.Encode(writer, c)
	}
}

// WriteAnnotatedPNG stamps a title onto the frame before saving, for
// quick preview contact sheets.
func (c *Canvas)WriteAnnotatedPNG(title, filename string) error {
	dc := gg.NewContextForImage(c.ToNRGBA())
	dc.SetRGB(1, 1, 1)
	dc.DrawString(title, 10, 20)
	return dc.SavePNG(filename)
}
