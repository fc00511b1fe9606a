package layerblit

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// LuminanceStats summarizes the rendered frame's Rec.709 luma, for
// eyeballing whether a composition is blowing out or crushing to
// black without opening the frames.
func (c *Canvas)LuminanceStats() (mean, stddev, median float64) {
	lums := make([]float64, 0, c.w*c.h)
	for i := range c.pix {
		p := c.pix[i]
		lums = append(lums, 0.2126*p.R + 0.7152*p.G + 0.0722*p.B)
	}

	mean = stat.Mean(lums, nil)
	stddev = math.Sqrt(stat.Variance(lums, nil))

	sort.Float64s(lums)
	median = stat.Quantile(0.5, stat.Empirical, lums, nil)

	return
}
