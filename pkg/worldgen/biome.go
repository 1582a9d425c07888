package worldgen

// Biome enumerates the terrain categories a cell can be classified into.
// The numeric values are stable and used by downstream serialization.
type Biome uint8

const (
	BiomeGrass Biome = iota
	BiomeCoast
	BiomeMountain
	BiomeOcean
	BiomeDesert
	BiomeTundra
	BiomeGlacier
	BiomeMarsh
	BiomeSteppe
	BiomeSavanna
	BiomeTaiga
	BiomeTemperateForest
	BiomeTropicalForest

	// BiomeCount is the number of biome categories.
	BiomeCount = 13
)

var biomeNames = [BiomeCount]string{
	BiomeGrass:           "grass",
	BiomeCoast:           "coast",
	BiomeMountain:        "mountain",
	BiomeOcean:           "ocean",
	BiomeDesert:          "desert",
	BiomeTundra:          "tundra",
	BiomeGlacier:         "glacier",
	BiomeMarsh:           "marsh",
	BiomeSteppe:          "steppe",
	BiomeSavanna:         "savanna",
	BiomeTaiga:           "taiga",
	BiomeTemperateForest: "temperate_forest",
	BiomeTropicalForest:  "tropical_forest",
}

func (b Biome) String() string {
	if int(b) < len(biomeNames) {
		return biomeNames[b]
	}
	return "unknown"
}

// IsWater reports whether the biome lies below sea level.
func (b Biome) IsWater() bool { return b == BiomeOcean }
