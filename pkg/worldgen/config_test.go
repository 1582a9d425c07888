package worldgen

import "testing"

func TestFromMapNil(t *testing.T) {
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatal("nil map must return the default config")
	}
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":                    "48",
		"h":                    "32",
		"seed":                 "-7",
		"plate_count":          "5",
		"hex_radius":           "2.5",
		"sea_level_percentile": "0.35",
		"mountain_threshold":   "0.9",
		"classifier":           ClassifierSimple,
		"noise_octaves":        "3",
		"convergent_gain":      "0",
		"smooth_passes":        "4",
		"max_water_radius":     "9",
	})
	if c.Width != 48 || c.Height != 32 {
		t.Fatalf("size override failed: %dx%d", c.Width, c.Height)
	}
	if c.Seed != -7 {
		t.Fatalf("seed override failed: %d", c.Seed)
	}
	if c.PlateCount != 5 {
		t.Fatalf("plate count override failed: %d", c.PlateCount)
	}
	if c.HexRadius != 2.5 {
		t.Fatalf("hex radius override failed: %g", c.HexRadius)
	}
	if c.SeaLevelPercentile != 0.35 || c.MountainThreshold != 0.9 {
		t.Fatalf("threshold overrides failed: %g %g", c.SeaLevelPercentile, c.MountainThreshold)
	}
	if c.Classifier != ClassifierSimple {
		t.Fatalf("classifier override failed: %q", c.Classifier)
	}
	if c.Noise.Octaves != 3 {
		t.Fatalf("octave override failed: %d", c.Noise.Octaves)
	}
	if c.Plates.ConvergentGain != 0 {
		t.Fatalf("gain override failed: %g", c.Plates.ConvergentGain)
	}
	if c.Smooth.Passes != 4 {
		t.Fatalf("passes override failed: %d", c.Smooth.Passes)
	}
	if c.Advanced.MaxWaterRadius != 9 {
		t.Fatalf("water radius override failed: %d", c.Advanced.MaxWaterRadius)
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"w":                    "-3",
		"h":                    "zero",
		"sea_level_percentile": "1.5",
		"plate_count":          "0",
	})
	if c.Width != def.Width || c.Height != def.Height {
		t.Fatal("invalid size overrides must keep defaults")
	}
	if c.SeaLevelPercentile != def.SeaLevelPercentile {
		t.Fatal("out-of-range percentile must keep the default")
	}
	if c.PlateCount != def.PlateCount {
		t.Fatal("non-positive plate count must keep the default")
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
}
