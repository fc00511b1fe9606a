package layerblit

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/mkreel/layerblit/pkg/lmath"
)

// A Layer binds a Texture to its placement and animation. Layers
// composite in the order they were added, back to front; layer 0 is
// the background.
type Layer struct {
	Name         string
	LoadFilename string

	BlitTransform         // placement at frame 0
	Texture       *Texture

	// Animation, evaluated per frame by the renderer
	Spin        float64    // radians/sec added to Angle
	Drift       lmath.Vec2 // UV/sec added to Shift
	ScaleTarget float64    // when >0, Scale eases toward this each frame
	ScaleEase   float64    // remaining-approach ratio per frame, (0,1]
	ShiftTarget lmath.Vec2 // where the shift path ends up
	ShiftFrames int        // when >0, Shift walks to ShiftTarget over this many frames
	ShiftSmooth float64    // sigmoid sharpness for the shift walk
}

func (l Layer)String() string {
	return fmt.Sprintf("%s: %dx%d, %s", l.Filename(), l.Texture.Width(), l.Texture.Height(), l.BlitTransform)
}

func (l Layer)Filename() string {
	if l.LoadFilename == "" {
		return l.Name
	}
	return filepath.Base(l.LoadFilename)
}

// transformAt evaluates the layer's animated transform for frame `n`
// at `t` seconds. The Layer itself is never mutated; every frame is
// derived from the frame-0 state so renders are order-independent
// and repeatable.
func (l Layer)transformAt(t float64, n int) BlitTransform {
	bt := l.BlitTransform
	bt.Angle += l.Spin * t

	// A sigmoid-eased walk to ShiftTarget wins over plain drift; the
	// two don't compose sensibly.
	if l.ShiftFrames > 0 {
		cur := n
		if cur > l.ShiftFrames { cur = l.ShiftFrames }
		bt.Shift = lmath.Vec2{
			lmath.SigmoidStep(l.BlitTransform.Shift[0], l.ShiftTarget[0], cur, l.ShiftFrames, l.ShiftSmooth),
			lmath.SigmoidStep(l.BlitTransform.Shift[1], l.ShiftTarget[1], cur, l.ShiftFrames, l.ShiftSmooth),
		}
	} else {
		bt.Shift = bt.Shift.Add(l.Drift.Scale(t))
	}

	if l.ScaleTarget > 0 && l.ScaleEase > 0 {
		// Applying RemainingApproach once per frame compounds; the
		// closed form keeps frame evaluation O(1).
		bt.Scale = l.ScaleTarget + (bt.Scale-l.ScaleTarget)*math.Pow(1.0-l.ScaleEase, float64(n))
	}

	return bt
}
