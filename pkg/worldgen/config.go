package worldgen

import (
	"fmt"
	"strconv"
)

// Classifier strategy names accepted by Config.Classifier.
const (
	ClassifierSimple   = "simple"
	ClassifierAdvanced = "advanced"
)

// NoiseParams holds tunables for the multi-octave value noise base terrain.
type NoiseParams struct {
	Scale       float64
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// PlateParams holds tunables for tectonic boundary stress.
type PlateParams struct {
	ConvergentGain  float64
	DivergentGain   float64
	StressThreshold float64
	JitterAmplitude float64
}

// SmoothParams holds tunables for post-tectonic relaxation.
type SmoothParams struct {
	Passes int
}

// AdvancedParams holds the thresholds and jitter magnitudes used by the
// advanced biome classifier. These are calibration knobs with no physical
// derivation; tests pin determinism, not their values.
type AdvancedParams struct {
	// Temperature derivation.
	AltitudeChill float64
	TempJitter    float64

	// Moisture derivation.
	MaxWaterRadius     int
	RainShadowAltitude float64
	RainShadowFactor   float64
	EquatorBand        float64
	EquatorBoost       float64
	MoistureJitter     float64

	// Classification thresholds.
	GlacierTemp        float64
	TundraTemp         float64
	CoastMarshMoisture float64
	ColdTemp           float64
	TaigaMoisture      float64
	HotTemp            float64
	SteppeMoisture     float64
	GrassMoisture      float64
	ForestMoisture     float64
	DesertMoisture     float64
	SavannaMoisture    float64
}

// FeatureParams holds placement probabilities and noise gates for the
// terrain feature layer.
type FeatureParams struct {
	Forest float64
	Jungle float64
	Marsh  float64
	Sand   float64
	Hills  float64
	Oasis  float64

	// Noise layer scales (smaller = broader clusters) and the vegetation
	// gate threshold in [0,1].
	VegetationScale float64
	RoughnessScale  float64
	VegetationGate  float64
}

// Config controls a single world generation run.
type Config struct {
	Width  int
	Height int

	Seed int64

	PlateCount int
	HexRadius  float64

	SeaLevelPercentile float64
	MountainThreshold  float64

	Classifier string

	Noise    NoiseParams
	Plates   PlateParams
	Smooth   SmoothParams
	Advanced AdvancedParams
	Features FeatureParams
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:              96,
		Height:             64,
		Seed:               1337,
		PlateCount:         11,
		HexRadius:          1.0,
		SeaLevelPercentile: 0.5,
		MountainThreshold:  0.8,
		Classifier:         ClassifierAdvanced,
		Noise: NoiseParams{
			Scale:       24,
			Octaves:     5,
			Persistence: 0.55,
			Lacunarity:  2.1,
		},
		Plates: PlateParams{
			ConvergentGain:  0.35,
			DivergentGain:   0.12,
			StressThreshold: 0.06,
			JitterAmplitude: 0.02,
		},
		Smooth: SmoothParams{
			Passes: 2,
		},
		Advanced: AdvancedParams{
			AltitudeChill:      0.6,
			TempJitter:         0.05,
			MaxWaterRadius:     15,
			RainShadowAltitude: 0.55,
			RainShadowFactor:   0.6,
			EquatorBand:        0.2,
			EquatorBoost:       0.15,
			MoistureJitter:     0.04,
			GlacierTemp:        0.15,
			TundraTemp:         0.25,
			CoastMarshMoisture: 0.75,
			ColdTemp:           0.3,
			TaigaMoisture:      0.5,
			HotTemp:            0.7,
			SteppeMoisture:     0.3,
			GrassMoisture:      0.6,
			ForestMoisture:     0.85,
			DesertMoisture:     0.3,
			SavannaMoisture:    0.6,
		},
		Features: FeatureParams{
			Forest:          0.12,
			Jungle:          0.08,
			Marsh:           0.05,
			Sand:            0.35,
			Hills:           0.20,
			Oasis:           0.02,
			VegetationScale: 0.04,
			RoughnessScale:  0.06,
			VegetationGate:  0.35,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["plate_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.PlateCount = parsed
		}
	}
	if v, ok := cfg["hex_radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.HexRadius = parsed
		}
	}
	if v, ok := cfg["sea_level_percentile"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 1 {
			c.SeaLevelPercentile = parsed
		}
	}
	if v, ok := cfg["mountain_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 1 {
			c.MountainThreshold = parsed
		}
	}
	if v, ok := cfg["classifier"]; ok && v != "" {
		c.Classifier = v
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Noise.Scale = parsed
		}
	}
	if v, ok := cfg["noise_octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Noise.Octaves = parsed
		}
	}
	if v, ok := cfg["noise_persistence"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Noise.Persistence = parsed
		}
	}
	if v, ok := cfg["noise_lacunarity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Noise.Lacunarity = parsed
		}
	}
	if v, ok := cfg["convergent_gain"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Plates.ConvergentGain = parsed
		}
	}
	if v, ok := cfg["divergent_gain"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Plates.DivergentGain = parsed
		}
	}
	if v, ok := cfg["stress_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Plates.StressThreshold = parsed
		}
	}
	if v, ok := cfg["jitter_amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Plates.JitterAmplitude = parsed
		}
	}
	if v, ok := cfg["smooth_passes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Smooth.Passes = parsed
		}
	}
	if v, ok := cfg["temp_jitter"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Advanced.TempJitter = parsed
		}
	}
	if v, ok := cfg["moisture_jitter"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Advanced.MoistureJitter = parsed
		}
	}
	if v, ok := cfg["max_water_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Advanced.MaxWaterRadius = parsed
		}
	}
	if v, ok := cfg["rain_shadow_factor"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Advanced.RainShadowFactor = parsed
		}
	}
	if v, ok := cfg["feature_hills"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Features.Hills = parsed
		}
	}
	if v, ok := cfg["feature_forest"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Features.Forest = parsed
		}
	}
	return c
}

// Validate rejects configurations the pipeline cannot run. It is called by
// Build before any grid allocation; a nil return guarantees generation runs
// to completion.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("worldgen: width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("worldgen: height must be positive, got %d", c.Height)
	}
	if c.PlateCount <= 0 {
		return fmt.Errorf("worldgen: plate count must be positive, got %d", c.PlateCount)
	}
	if c.PlateCount > c.Width*c.Height {
		return fmt.Errorf("worldgen: plate count %d exceeds %d cells", c.PlateCount, c.Width*c.Height)
	}
	if c.HexRadius <= 0 {
		return fmt.Errorf("worldgen: hex radius must be positive, got %g", c.HexRadius)
	}
	if c.SeaLevelPercentile <= 0 || c.SeaLevelPercentile >= 1 {
		return fmt.Errorf("worldgen: sea level percentile must be in (0,1), got %g", c.SeaLevelPercentile)
	}
	if c.MountainThreshold <= 0 || c.MountainThreshold >= 1 {
		return fmt.Errorf("worldgen: mountain threshold must be in (0,1), got %g", c.MountainThreshold)
	}
	if c.Noise.Octaves <= 0 {
		return fmt.Errorf("worldgen: noise octaves must be positive, got %d", c.Noise.Octaves)
	}
	if c.Noise.Scale <= 0 {
		return fmt.Errorf("worldgen: noise scale must be positive, got %g", c.Noise.Scale)
	}
	if c.Smooth.Passes < 0 {
		return fmt.Errorf("worldgen: smoothing passes must not be negative, got %d", c.Smooth.Passes)
	}
	if _, ok := classifiers[c.Classifier]; !ok {
		return fmt.Errorf("worldgen: unknown classifier %q", c.Classifier)
	}
	return nil
}
