package worldgen

import (
	"github.com/aquilax/go-perlin"

	"hexworld/pkg/rng"
)

// featureSeedOffset separates the feature placement stream from the other
// generation stages.
const featureSeedOffset = 31337

// Perlin layer shape shared by the roughness and vegetation fields.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// Feature enumerates the terrain feature layer values. The numeric values
// are stable and used by downstream serialization.
type Feature uint8

const (
	FeatureNone Feature = iota
	FeatureForest
	FeatureJungle
	FeatureMarsh
	FeatureSand
	FeatureHills
	FeatureOasis
	FeatureForestHills
	FeatureJungleHills
)

var featureNames = [...]string{
	FeatureNone:        "none",
	FeatureForest:      "forest",
	FeatureJungle:      "jungle",
	FeatureMarsh:       "marsh",
	FeatureSand:        "sand",
	FeatureHills:       "hills",
	FeatureOasis:       "oasis",
	FeatureForestHills: "forest_hills",
	FeatureJungleHills: "jungle_hills",
}

func (f Feature) String() string {
	if int(f) < len(featureNames) {
		return featureNames[f]
	}
	return "unknown"
}

// generateFeatures places the terrain feature layer on top of the finished
// biome map. Vegetation draws are gated by a perlin layer so forests and
// jungles cluster instead of speckling; a second perlin layer scales the
// hill probability so hills follow ridged noise. Hills stack with forest
// and jungle as combined features. Ocean, mountain and glacier cells never
// carry a feature.
func generateFeatures(biomes []Biome, w, h int, p FeatureParams, seed int64) []Feature {
	r := rng.New(seed + featureSeedOffset)
	veg := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed+featureSeedOffset)
	rough := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed+featureSeedOffset+1)

	out := make([]Feature, len(biomes))
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			i := row*w + col
			b := biomes[i]
			if b == BiomeOcean || b == BiomeMountain || b == BiomeGlacier {
				continue
			}

			vegNoise := noise01(veg, float64(col)*p.VegetationScale, float64(row)*p.VegetationScale)
			roughNoise := noise01(rough, float64(col)*p.RoughnessScale, float64(row)*p.RoughnessScale)

			// Exclusive vegetation features on grass.
			if b == BiomeGrass {
				switch {
				case r.Float64() < p.Marsh:
					out[i] = FeatureMarsh
				case vegNoise > p.VegetationGate && r.Float64() < p.Forest:
					out[i] = FeatureForest
				case vegNoise > p.VegetationGate && r.Float64() < p.Jungle:
					out[i] = FeatureJungle
				}
			}

			// Exclusive features on desert.
			if b == BiomeDesert {
				switch {
				case r.Float64() < p.Oasis:
					out[i] = FeatureOasis
				case r.Float64() < p.Sand:
					out[i] = FeatureSand
				}
			}

			// Hills may stack with forest and jungle.
			if r.Float64() < p.Hills*roughNoise {
				switch out[i] {
				case FeatureForest:
					out[i] = FeatureForestHills
				case FeatureJungle:
					out[i] = FeatureJungleHills
				case FeatureNone:
					out[i] = FeatureHills
				}
			}
		}
	}
	return out
}

// noise01 maps a perlin sample into [0,1].
func noise01(p *perlin.Perlin, x, y float64) float64 {
	return clamp01(0.5 + p.Noise2D(x, y))
}
