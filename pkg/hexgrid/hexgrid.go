// Package hexgrid provides axial coordinate math for flat-top hex grids.
package hexgrid

import "math"

// Sqrt3 is the vertical hex spacing factor for flat-top projection.
var Sqrt3 = math.Sqrt(3.0)

// Coord is a position on the hex grid in axial coordinates. The third cube
// coordinate is implicit: s = -q - r.
type Coord struct {
	Q int
	R int
}

// S returns the implicit third cube coordinate.
func (c Coord) S() int { return -c.Q - c.R }

// Directions lists the six axial neighbor offsets (flat-top orientation).
// The order is stable: entries i and i+3 are opposite edges.
var Directions = [6]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent coordinates. Callers must bounds-check
// before indexing a grid; off-grid neighbors are simply skipped.
func (c Coord) Neighbors() [6]Coord {
	var out [6]Coord
	for i, d := range Directions {
		out[i] = Coord{Q: c.Q + d.Q, R: c.R + d.R}
	}
	return out
}

// Distance returns the hex grid distance between two axial coordinates,
// i.e. the max of the absolute cube coordinate differences.
func Distance(a, b Coord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	return max(dq, dr, ds)
}

// ToPixel converts an axial coordinate to 2D pixel space for flat-top hexes
// with the given radius.
func ToPixel(c Coord, radius float64) (float64, float64) {
	x := 1.5 * radius * float64(c.Q)
	y := Sqrt3 * radius * (float64(c.R) + 0.5*float64(c.Q))
	return x, y
}

// FromPixel is the approximate inverse of ToPixel: it returns the axial
// coordinate of the hex containing the pixel point. radius must match the
// radius used for projection and be non-zero.
func FromPixel(x, y, radius float64) Coord {
	fq := (2.0 / 3.0) * x / radius
	fr := ((-1.0/3.0)*x + (Sqrt3/3.0)*y) / radius
	return axialRound(fq, fr)
}

// axialRound snaps fractional axial coordinates to the nearest hex by
// rounding in cube space and re-deriving the axis with the largest error.
func axialRound(fq, fr float64) Coord {
	fs := -fq - fr
	rq := math.Round(fq)
	rr := math.Round(fr)
	rs := math.Round(fs)

	dq := math.Abs(rq - fq)
	dr := math.Abs(rr - fr)
	ds := math.Abs(rs - fs)

	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	}
	return Coord{Q: int(rq), R: int(rr)}
}

// InBounds reports whether c lies within rectangular axial bounds [0,w)x[0,h).
func InBounds(c Coord, w, h int) bool {
	return c.Q >= 0 && c.Q < w && c.R >= 0 && c.R < h
}

// Index returns the row-major slice index for c on a grid of width w.
func Index(c Coord, w int) int { return c.R*w + c.Q }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
