// Package rng wraps math/rand/v2 for deterministic seeding.
package rng

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2. Every generation
// stage owns its own instance; there is no package-level random state.
type RNG struct {
	r *rand.Rand
}

// New creates a deterministic RNG using the provided seed.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// NormFloat64 returns a standard normally distributed float64.
func (r *RNG) NormFloat64() float64 { return r.r.NormFloat64() }

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
