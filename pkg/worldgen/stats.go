package worldgen

// Census summarizes the composition of a generated world. It is cheap to
// compute and intended for tuning sweeps and test assertions.
type Census struct {
	// Counts records the number of cells per biome category.
	Counts [BiomeCount]int
	// Land is the number of cells at or above sea level.
	Land int
	// Total is the number of cells in the grid.
	Total int
}

// Census tallies the world's biome map.
func (w *World) Census() Census {
	c := Census{Total: len(w.Biomes)}
	for _, b := range w.Biomes {
		c.Counts[b]++
		if !b.IsWater() {
			c.Land++
		}
	}
	return c
}

// Distinct returns how many biome categories appear at least once.
func (c Census) Distinct() int {
	n := 0
	for _, v := range c.Counts {
		if v > 0 {
			n++
		}
	}
	return n
}

// LandFraction returns the share of cells above sea level.
func (c Census) LandFraction() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Land) / float64(c.Total)
}
