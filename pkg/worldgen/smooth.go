package worldgen

import (
	"slices"

	"hexworld/pkg/hexgrid"
)

// minSpan guards normalization against a perfectly flat field; a zero
// range is substituted, never surfaced as an error.
const minSpan = 1e-6

// smoothHeights runs the configured number of neighbor-averaging passes.
// Each cell becomes the mean of itself and its in-bounds hex neighbors.
// Reads and writes alternate between two buffers so a pass never observes
// its own output. Returns the buffer holding the final pass.
func smoothHeights(heights []float64, w, h, passes int) []float64 {
	src := heights
	dst := make([]float64, len(heights))
	for pass := 0; pass < passes; pass++ {
		for row := 0; row < h; row++ {
			for col := 0; col < w; col++ {
				c := hexgrid.Coord{Q: col, R: row}
				sum := src[hexgrid.Index(c, w)]
				n := 1.0
				for _, nb := range c.Neighbors() {
					if !hexgrid.InBounds(nb, w, h) {
						continue
					}
					sum += src[hexgrid.Index(nb, w)]
					n++
				}
				dst[hexgrid.Index(c, w)] = sum / n
			}
		}
		src, dst = dst, src
	}
	return src
}

// normalizeHeights rescales the field in place so min maps to 0 and max to
// 1, flooring the span to avoid dividing by zero on degenerate fields.
func normalizeHeights(heights []float64) {
	if len(heights) == 0 {
		return
	}
	lo, hi := heights[0], heights[0]
	for _, v := range heights {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span < minSpan {
		span = minSpan
	}
	for i := range heights {
		heights[i] = (heights[i] - lo) / span
	}
}

// quantile returns the linearly interpolated p-quantile of values, used to
// derive the sea level. p must be in (0,1).
func quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	pos := p * float64(len(sorted)-1)
	lo := int(pos)
	frac := pos - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + (sorted[lo+1]-sorted[lo])*frac
}
