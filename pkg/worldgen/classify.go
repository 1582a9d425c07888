package worldgen

import (
	"math"

	"hexworld/pkg/hexgrid"
	"hexworld/pkg/rng"
)

// climateSeedOffset separates the classifier jitter stream from the other
// generation stages.
const climateSeedOffset = 7777

// classifier is a one-shot pure mapping from the smoothed height field to
// a biome per cell. Implementations hold no state between runs.
type classifier interface {
	Classify(heights []float64, seaLevel float64, cfg Config) []Biome
}

// classifiers is the registry of selectable strategies, keyed by the
// Config.Classifier name.
var classifiers = map[string]classifier{
	ClassifierSimple:   simpleClassifier{},
	ClassifierAdvanced: advancedClassifier{},
}

// simpleClassifier maps height alone: ocean below sea level, mountain above
// the threshold, coast next to ocean, grass otherwise.
type simpleClassifier struct{}

func (simpleClassifier) Classify(heights []float64, seaLevel float64, cfg Config) []Biome {
	w, h := cfg.Width, cfg.Height
	out := make([]Biome, len(heights))
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c := hexgrid.Coord{Q: col, R: row}
			i := hexgrid.Index(c, w)
			h0 := heights[i]
			switch {
			case h0 < seaLevel:
				out[i] = BiomeOcean
			case h0 >= cfg.MountainThreshold:
				out[i] = BiomeMountain
			default:
				out[i] = BiomeGrass
				for _, nb := range c.Neighbors() {
					if hexgrid.InBounds(nb, w, h) && heights[hexgrid.Index(nb, w)] < seaLevel {
						out[i] = BiomeCoast
						break
					}
				}
			}
		}
	}
	return out
}

// advancedClassifier derives latitude, altitude, temperature and moisture
// per cell and applies an ordered set of threshold rules over them. All
// thresholds live in AdvancedParams.
type advancedClassifier struct{}

func (advancedClassifier) Classify(heights []float64, seaLevel float64, cfg Config) []Biome {
	w, h := cfg.Width, cfg.Height
	p := cfg.Advanced
	r := rng.New(cfg.Seed + climateSeedOffset)
	out := make([]Biome, len(heights))

	water := make([]bool, len(heights))
	for i, v := range heights {
		water[i] = v < seaLevel
	}
	bfs := newWaterBFS(water, w, h, p.MaxWaterRadius)

	// Headroom above sea level is measured against the remaining [sea,1]
	// band so a high sea level still yields full-range altitudes.
	headroom := 1 - seaLevel
	if headroom < minSpan {
		headroom = minSpan
	}

	for row := 0; row < h; row++ {
		lat := latitude(row, h)
		for col := 0; col < w; col++ {
			c := hexgrid.Coord{Q: col, R: row}
			i := hexgrid.Index(c, w)
			if water[i] {
				out[i] = BiomeOcean
				continue
			}

			alt := clamp01((heights[i] - seaLevel) / headroom)
			temp := clamp01((1 - math.Abs(lat)) - p.AltitudeChill*alt + r.NormFloat64()*p.TempJitter)

			dist := bfs.distance(c)
			moist := 1 - float64(dist)/float64(p.MaxWaterRadius+1)
			if alt > p.RainShadowAltitude {
				moist *= p.RainShadowFactor
			}
			if math.Abs(lat) < p.EquatorBand {
				moist += p.EquatorBoost
			}
			moist = clamp01(moist + r.NormFloat64()*p.MoistureJitter)

			coastal := false
			for _, nb := range c.Neighbors() {
				if hexgrid.InBounds(nb, w, h) && water[hexgrid.Index(nb, w)] {
					coastal = true
					break
				}
			}

			out[i] = classifyCell(heights[i], seaLevel, cfg.MountainThreshold, temp, moist, coastal, p)
		}
	}
	return out
}

// classifyCell applies the ordered threshold rules. It is a pure function
// of the derived scalars plus the coastal-adjacency flag.
func classifyCell(h0, sea, mountain, temp, moist float64, coastal bool, p AdvancedParams) Biome {
	switch {
	case h0 < sea:
		return BiomeOcean
	case h0 >= mountain:
		if temp < p.GlacierTemp {
			return BiomeGlacier
		}
		return BiomeMountain
	case coastal:
		switch {
		case temp < p.TundraTemp:
			return BiomeTundra
		case moist > p.CoastMarshMoisture:
			return BiomeMarsh
		default:
			return BiomeCoast
		}
	case temp < p.ColdTemp:
		if moist >= p.TaigaMoisture {
			return BiomeTaiga
		}
		return BiomeTundra
	case temp < p.HotTemp:
		switch {
		case moist < p.SteppeMoisture:
			return BiomeSteppe
		case moist < p.GrassMoisture:
			return BiomeGrass
		case moist < p.ForestMoisture:
			return BiomeTemperateForest
		default:
			return BiomeMarsh
		}
	default:
		switch {
		case moist < p.DesertMoisture:
			return BiomeDesert
		case moist < p.SavannaMoisture:
			return BiomeSavanna
		default:
			return BiomeTropicalForest
		}
	}
}

// latitude maps a row to [-1,1], 0 at the equator. A single-row grid sits
// on the equator.
func latitude(row, h int) float64 {
	if h <= 1 {
		return 0
	}
	return 2*float64(row)/float64(h-1) - 1
}

// waterBFS finds the hex distance from a cell to the nearest water cell,
// capped at maxRadius. The visited stamps and queue are reused across
// cells so the per-cell search stays allocation free.
type waterBFS struct {
	w, h      int
	maxRadius int
	water     []bool
	stamp     []int
	gen       int
	queue     []bfsNode
}

type bfsNode struct {
	c hexgrid.Coord
	d int
}

func newWaterBFS(water []bool, w, h, maxRadius int) *waterBFS {
	return &waterBFS{
		w:         w,
		h:         h,
		maxRadius: maxRadius,
		water:     water,
		stamp:     make([]int, w*h),
	}
}

// distance runs a breadth-first expansion from start over in-bounds hex
// neighbors. Returns maxRadius when no water lies within it, which bounds
// the worst-case cost per cell.
func (b *waterBFS) distance(start hexgrid.Coord) int {
	i := hexgrid.Index(start, b.w)
	if b.water[i] {
		return 0
	}
	b.gen++
	b.stamp[i] = b.gen
	b.queue = append(b.queue[:0], bfsNode{c: start})
	for head := 0; head < len(b.queue); head++ {
		n := b.queue[head]
		if n.d >= b.maxRadius {
			continue
		}
		for _, nb := range n.c.Neighbors() {
			if !hexgrid.InBounds(nb, b.w, b.h) {
				continue
			}
			j := hexgrid.Index(nb, b.w)
			if b.stamp[j] == b.gen {
				continue
			}
			if b.water[j] {
				return n.d + 1
			}
			b.stamp[j] = b.gen
			b.queue = append(b.queue, bfsNode{c: nb, d: n.d + 1})
		}
	}
	return b.maxRadius
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
