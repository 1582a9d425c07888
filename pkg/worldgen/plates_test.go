package worldgen

import (
	"slices"
	"testing"

	"hexworld/pkg/hexgrid"
	"hexworld/pkg/rng"
)

func TestPartitionIsTotal(t *testing.T) {
	const w, h, count = 16, 12, 7
	part := partitionPlates(w, h, count, 1.0, 4321)

	if len(part.cells) != w*h {
		t.Fatalf("expected %d assignments, got %d", w*h, len(part.cells))
	}
	used := make([]int, count)
	for i, id := range part.cells {
		if id < 0 || id >= count {
			t.Fatalf("cell %d assigned invalid plate id %d", i, id)
		}
		used[id]++
	}
	for id, n := range used {
		if n == 0 {
			t.Fatalf("plate %d owns no cells", id)
		}
	}
}

func TestPartitionSitesMapToOwnPlate(t *testing.T) {
	// A site cell is at distance zero from itself, which is always the
	// strict minimum because sites are distinct.
	part := partitionPlates(8, 8, 4, 1.0, 1)
	for id, site := range part.sites {
		if got := part.cells[hexgrid.Index(site, 8)]; got != id {
			t.Fatalf("site %v of plate %d assigned to plate %d", site, id, got)
		}
	}
}

func TestPartitionDeterministic(t *testing.T) {
	a := partitionPlates(20, 14, 9, 2.0, 77)
	b := partitionPlates(20, 14, 9, 2.0, 77)
	if !slices.Equal(a.cells, b.cells) {
		t.Fatal("identical seeds must produce identical assignments")
	}
	if !slices.Equal(a.plates, b.plates) {
		t.Fatal("identical seeds must produce identical velocities")
	}
}

func TestPlateVelocityMagnitudes(t *testing.T) {
	part := partitionPlates(16, 16, 10, 1.0, 3)
	for _, p := range part.plates {
		mag := p.VX*p.VX + p.VY*p.VY
		if mag < 0.4*0.4-1e-9 || mag > 1.0+1e-9 {
			t.Fatalf("plate %d velocity magnitude^2 %v outside [0.16, 1]", p.ID, mag)
		}
	}
}

func TestZeroGainsLeaveJitteredNoise(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 16
	cfg.Height = 12
	cfg.Seed = 5

	heights := valueNoise(cfg.Width, cfg.Height, cfg.Noise, cfg.Seed)
	want := slices.Clone(heights)

	part := partitionPlates(cfg.Width, cfg.Height, cfg.PlateCount, cfg.HexRadius, cfg.Seed)
	p := cfg.Plates
	p.ConvergentGain = 0
	p.DivergentGain = 0
	applyBoundaryForces(heights, part, p, cfg.Seed)

	// With zero gains only the pre-boundary jitter remains.
	r := rng.New(cfg.Seed + boundarySeedOffset)
	for i := range want {
		want[i] += (r.Float64() - 0.5) * p.JitterAmplitude
	}
	if !slices.Equal(want, heights) {
		t.Fatal("zero gains must leave the jittered noise field untouched")
	}
}

func TestBoundaryForcesPerturbBoundaries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 18
	cfg.Seed = 11

	jittered := valueNoise(cfg.Width, cfg.Height, cfg.Noise, cfg.Seed)
	part := partitionPlates(cfg.Width, cfg.Height, cfg.PlateCount, cfg.HexRadius, cfg.Seed)

	zeroed := slices.Clone(jittered)
	p := cfg.Plates
	p.ConvergentGain = 0
	p.DivergentGain = 0
	applyBoundaryForces(zeroed, part, p, cfg.Seed)

	stressed := slices.Clone(jittered)
	applyBoundaryForces(stressed, part, cfg.Plates, cfg.Seed)

	if slices.Equal(zeroed, stressed) {
		t.Fatal("nonzero gains produced no boundary stress on an 11-plate map")
	}
}

func TestBoundaryForcesDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 16
	cfg.Height = 16
	cfg.Seed = 21

	part := partitionPlates(cfg.Width, cfg.Height, cfg.PlateCount, cfg.HexRadius, cfg.Seed)
	a := valueNoise(cfg.Width, cfg.Height, cfg.Noise, cfg.Seed)
	b := slices.Clone(a)
	applyBoundaryForces(a, part, cfg.Plates, cfg.Seed)
	applyBoundaryForces(b, part, cfg.Plates, cfg.Seed)
	if !slices.Equal(a, b) {
		t.Fatal("identical inputs must produce identical stress")
	}
}
