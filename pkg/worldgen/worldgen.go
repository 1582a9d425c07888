// Package worldgen procedurally generates the terrain of a hex-tessellated
// planet: a deterministic height field, a tectonic plate partition and a
// biome classification, all derived from a single seed plus size and
// threshold parameters.
package worldgen

import "hexworld/pkg/hexgrid"

// World is the finished output of one generation run. All grids share the
// same Width x Height shape in row-major order and are immutable once
// returned. Heights are normalized to [0,1]; Plates and Biomes are total
// over the grid.
type World struct {
	Width  int
	Height int

	// Heights is the normalized height field.
	Heights []float64
	// Biomes maps each cell to one of the 13 biome categories.
	Biomes []Biome
	// Plates maps each cell to its tectonic plate id.
	Plates []int
	// Features is the terrain feature layer on top of Biomes.
	Features []Feature

	// PlateVelocities and PlateSites describe the plates themselves,
	// indexed by plate id.
	PlateVelocities []Plate
	PlateSites      []hexgrid.Coord

	// SeaLevel is the quantile-derived land/water threshold.
	SeaLevel float64
}

// Index returns the row-major index for axial (q, r).
func (w *World) Index(q, r int) int { return r*w.Width + q }

// HeightAt returns the normalized height at (q, r).
func (w *World) HeightAt(q, r int) float64 { return w.Heights[w.Index(q, r)] }

// BiomeAt returns the biome at (q, r).
func (w *World) BiomeAt(q, r int) Biome { return w.Biomes[w.Index(q, r)] }

// PlateAt returns the plate id at (q, r).
func (w *World) PlateAt(q, r int) int { return w.Plates[w.Index(q, r)] }

// FeatureAt returns the terrain feature at (q, r).
func (w *World) FeatureAt(q, r int) Feature { return w.Features[w.Index(q, r)] }

// Build runs the fixed generation pipeline: value noise, plate partition,
// boundary forces, smoothing and normalization, sea level, biome
// classification, feature placement. Identical inputs always produce
// numerically identical outputs; independent calls share no state.
func Build(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	heights := valueNoise(cfg.Width, cfg.Height, cfg.Noise, cfg.Seed)
	part := partitionPlates(cfg.Width, cfg.Height, cfg.PlateCount, cfg.HexRadius, cfg.Seed)
	applyBoundaryForces(heights, part, cfg.Plates, cfg.Seed)

	heights = smoothHeights(heights, cfg.Width, cfg.Height, cfg.Smooth.Passes)
	normalizeHeights(heights)
	sea := quantile(heights, cfg.SeaLevelPercentile)

	biomes := classifiers[cfg.Classifier].Classify(heights, sea, cfg)
	features := generateFeatures(biomes, cfg.Width, cfg.Height, cfg.Features, cfg.Seed)

	return &World{
		Width:           cfg.Width,
		Height:          cfg.Height,
		Heights:         heights,
		Biomes:          biomes,
		Plates:          part.cells,
		Features:        features,
		PlateVelocities: part.plates,
		PlateSites:      part.sites,
		SeaLevel:        sea,
	}, nil
}
