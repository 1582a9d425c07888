package worldgen

import (
	"math"

	"hexworld/pkg/hexgrid"
	"hexworld/pkg/rng"
)

// boundarySeedOffset separates the boundary jitter stream from the site
// selection stream. The value is part of the regression contract.
const boundarySeedOffset = 9999

// Plate describes one tectonic plate: a stable id and a drift velocity in
// pixel space. Plates are assigned once per run and never change.
type Plate struct {
	ID int
	VX float64
	VY float64
}

// platePartition is the Voronoi assignment of every cell to its nearest
// plate site, plus the cached pixel projection used both for the
// assignment and for boundary-edge normals.
type platePartition struct {
	w, h   int
	plates []Plate
	sites  []hexgrid.Coord
	cells  []int // cell index -> plate id, total over the grid
	px, py []float64
}

// partitionPlates selects count distinct sites uniformly at random, gives
// each a random velocity (direction uniform, magnitude in [0.4,1.0]) and
// assigns every cell the id of its nearest site by squared Euclidean
// distance. Brute force over all site/cell pairs; this is a one-shot
// offline cost.
func partitionPlates(w, h, count int, radius float64, seed int64) *platePartition {
	r := rng.New(seed)

	// Re-draw on collision until count distinct sites exist. Terminates
	// because Config.Validate guarantees count <= w*h.
	seen := make(map[hexgrid.Coord]struct{}, count)
	sites := make([]hexgrid.Coord, 0, count)
	for len(sites) < count {
		c := hexgrid.Coord{Q: r.IntN(w), R: r.IntN(h)}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		sites = append(sites, c)
	}

	plates := make([]Plate, count)
	for i := range plates {
		ang := r.Float64() * 2 * math.Pi
		mag := 0.4 + r.Float64()*0.6
		plates[i] = Plate{ID: i, VX: math.Cos(ang) * mag, VY: math.Sin(ang) * mag}
	}

	siteX := make([]float64, count)
	siteY := make([]float64, count)
	for i, s := range sites {
		siteX[i], siteY[i] = hexgrid.ToPixel(s, radius)
	}

	part := &platePartition{
		w:      w,
		h:      h,
		plates: plates,
		sites:  sites,
		cells:  make([]int, w*h),
		px:     make([]float64, w*h),
		py:     make([]float64, w*h),
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			i := row*w + col
			x, y := hexgrid.ToPixel(hexgrid.Coord{Q: col, R: row}, radius)
			part.px[i] = x
			part.py[i] = y

			best := 0
			bestD2 := math.MaxFloat64
			for k := 0; k < count; k++ {
				dx := x - siteX[k]
				dy := y - siteY[k]
				if d2 := dx*dx + dy*dy; d2 < bestD2 {
					best = k
					bestD2 = d2
				}
			}
			part.cells[i] = best
		}
	}
	return part
}

// halfDirections covers three of the six hex edges so every boundary edge
// is visited exactly once during the stress scan.
var halfDirections = [3]hexgrid.Coord{
	hexgrid.Directions[0],
	hexgrid.Directions[2],
	hexgrid.Directions[4],
}

// applyBoundaryForces mutates heights in place: small seeded jitter across
// the whole field, then convergent/divergent stress wherever an edge joins
// two different plates. Relative plate velocity is projected onto the edge
// normal; projections beyond the threshold raise (convergent) or lower
// (divergent) both cells, split evenly. Deltas are unbounded here and
// resolved later by the smoother.
func applyBoundaryForces(heights []float64, part *platePartition, p PlateParams, seed int64) {
	r := rng.New(seed + boundarySeedOffset)
	for i := range heights {
		heights[i] += (r.Float64() - 0.5) * p.JitterAmplitude
	}

	for row := 0; row < part.h; row++ {
		for col := 0; col < part.w; col++ {
			i := row*part.w + col
			pid := part.cells[i]
			vel := part.plates[pid]
			for _, d := range halfDirections {
				n := hexgrid.Coord{Q: col + d.Q, R: row + d.R}
				if !hexgrid.InBounds(n, part.w, part.h) {
					continue
				}
				j := hexgrid.Index(n, part.w)
				nid := part.cells[j]
				if nid == pid {
					continue
				}
				nvel := part.plates[nid]

				ex := part.px[j] - part.px[i]
				ey := part.py[j] - part.py[i]
				el := math.Hypot(ex, ey)
				if el == 0 {
					continue
				}
				ex /= el
				ey /= el
				// Boundary normal is perpendicular to the edge vector.
				nx, ny := -ey, ex

				dot := (vel.VX-nvel.VX)*nx + (vel.VY-nvel.VY)*ny
				switch {
				case dot > p.StressThreshold:
					delta := (dot - p.StressThreshold) * p.ConvergentGain
					heights[i] += delta * 0.5
					heights[j] += delta * 0.5
				case dot < -p.StressThreshold:
					delta := (-p.StressThreshold - dot) * p.DivergentGain
					heights[i] -= delta * 0.5
					heights[j] -= delta * 0.5
				}
			}
		}
	}
}
