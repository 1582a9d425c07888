package worldgen

import "hexworld/pkg/rng"

// valueNoise builds the base height grid: multi-octave value noise in
// roughly [0,1], deterministic for a seed. Each octave fills a coarse
// random grid sized to the current frequency, bilinearly upsamples it to
// full resolution and accumulates it weighted by the current amplitude.
func valueNoise(w, h int, p NoiseParams, seed int64) []float64 {
	r := rng.New(seed)
	out := make([]float64, w*h)

	amp := 1.0
	freq := 1.0 / p.Scale
	total := 0.0
	for oct := 0; oct < p.Octaves; oct++ {
		gw := max(2, int(float64(w)*freq)+2)
		gh := max(2, int(float64(h)*freq)+2)
		grid := make([]float64, gw*gh)
		for i := range grid {
			grid[i] = r.Float64()
		}

		for row := 0; row < h; row++ {
			fy := sampleCoord(row, h, gh)
			y0 := int(fy)
			y1 := min(y0+1, gh-1)
			ty := fy - float64(y0)
			for col := 0; col < w; col++ {
				fx := sampleCoord(col, w, gw)
				x0 := int(fx)
				x1 := min(x0+1, gw-1)
				tx := fx - float64(x0)

				g00 := grid[y0*gw+x0]
				g10 := grid[y0*gw+x1]
				g01 := grid[y1*gw+x0]
				g11 := grid[y1*gw+x1]
				top := g00*(1-tx) + g10*tx
				bottom := g01*(1-tx) + g11*tx
				out[row*w+col] += (top*(1-ty) + bottom*ty) * amp
			}
		}

		total += amp
		amp *= p.Persistence
		freq *= p.Lacunarity
	}

	if total > 0 {
		for i := range out {
			out[i] /= total
		}
	}
	return out
}

// sampleCoord maps full-resolution index i of n samples onto the coarse
// axis [0, coarse-1]. A single-sample axis collapses to 0.
func sampleCoord(i, n, coarse int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(coarse-1) * float64(i) / float64(n-1)
}
