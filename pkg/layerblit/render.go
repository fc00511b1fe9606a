package layerblit

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/codahale/hdrhistogram"

	"github.com/mkreel/layerblit/pkg/lcolor"
	"github.com/mkreel/layerblit/pkg/lmath"
)

// A Composition owns the layer stack and the render loop: one Canvas
// per frame, every pixel folded back-to-front through the blit
// transform and the over compositor.
type Composition struct {
	Config
	Layers []Layer

	frameTimes *hdrhistogram.Histogram
}

func NewComposition() *Composition {
	return &Composition{
		Config: NewConfig(),
		Layers: []Layer{},

		// Frame render times in microseconds; nobody needs more than
		// a minute per frame resolved.
		frameTimes: hdrhistogram.New(1, 60_000_000, 3),
	}
}

func (cmp *Composition)String() string {
	str := fmt.Sprintf("Composition %dx%d @%gfps [\n", cmp.Width, cmp.Height, cmp.FPS)
	for _, l := range cmp.Layers {
		str += fmt.Sprintf("  %s\n", l)
	}
	return str + "]\n"
}

// AddLayer appends to the top of the stack; layers composite in the
// order added, back to front.
func (cmp *Composition)AddLayer(l Layer) {
	cmp.Layers = append(cmp.Layers, l)
}

// RenderFrame composites frame `n` into a fresh Canvas. Rows are
// farmed out to a worker pool; pixels share nothing, so no locking.
func (cmp *Composition)RenderFrame(n int) *Canvas {
	started := time.Now()
	t := float64(n) / cmp.FPS
	canvas := NewCanvas(cmp.Width, cmp.Height)

	// Evaluate each layer's animated transform once per frame, not
	// once per pixel.
	xforms := make([]BlitTransform, len(cmp.Layers))
	for i := range cmp.Layers {
		xforms[i] = cmp.Layers[i].transformAt(t, n)
	}

	var wg sync.WaitGroup
	rowsChan := make(chan int, cmp.Height)

	nWorkers := 20
	for i:=0; i<nWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowsChan {
				cmp.renderRow(canvas, xforms, y, n)
			}
		}()
	}

	for y:=0; y<cmp.Height; y++ {
		rowsChan<- y
	}
	close(rowsChan)
	wg.Wait()

	cmp.frameTimes.RecordValue(time.Since(started).Microseconds())

	if cmp.Verbosity > 1 {
		mean, stddev, median := canvas.LuminanceStats()
		log.Printf("frame %04d: luminance mean=%.4f stddev=%.4f median=%.4f\n", n, mean, stddev, median)
	}

	return canvas
}

func (cmp *Composition)renderRow(canvas *Canvas, xforms []BlitTransform, y, n int) {
	for x:=0; x<cmp.Width; x++ {
		// Pixel centers, top-down UV space.
		uv := lmath.Vec2{
			(float64(x) + 0.5) / float64(cmp.Width),
			(float64(y) + 0.5) / float64(cmp.Height),
		}

		acc := cmp.BackgroundColor()
		for i := range cmp.Layers {
			col := BlitImage(acc, cmp.Layers[i].Texture, uv, xforms[i])
			acc = lcolor.Over(col, acc)
		}

		if cmp.Grain != 0 {
			acc = Grain(acc, uv, float64(n), cmp.Grain)
		}
		if cmp.Sweep != 0 {
			acc = SectorSweep(acc, uv, cmp.Sectors, cmp.Sweep)
		}

		// The final scale-and-clamp; also what keeps quantization sane.
		acc = lcolor.Saturate(acc, cmp.Saturation)

		canvas.SetPix(x, y, acc)
	}
}

// RenderTimings summarizes the per-frame render durations recorded so
// far.
func (cmp *Composition)RenderTimings() string {
	h := cmp.frameTimes
	return fmt.Sprintf("frames=%d p50=%v p99=%v max=%v",
		h.TotalCount(),
		time.Duration(h.ValueAtQuantile(50))*time.Microsecond,
		time.Duration(h.ValueAtQuantile(99))*time.Microsecond,
		time.Duration(h.Max())*time.Microsecond)
}
