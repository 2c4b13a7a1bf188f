// SPDX-License-Identifier: MIT
// Package rng - Source wraps an optional seeded stream.
//
// Determinism policy:
//   - factory != nil ⇒ stream is a pure function of the seed.
//   - factory != nil && seed == "" ⇒ a fresh seed is generated and recorded.
//   - factory == nil ⇒ global math/rand; seed is recorded as absent ("").

package rng

import "math/rand"

// Factory builds a float stream in [0,1) from a seed string.
type Factory func(seed string) func() float64

// Source produces floats in [0,1) for one generator.
type Source struct {
	next         func() float64
	seed         string
	reproducible bool
}

// NewSource resolves a Source for the given factory and seed.
// With a nil factory the seed is discarded and the stream is not
// reproducible. If the factory returns a nil stream the same fallback applies.
// Complexity: O(1) plus the factory's own setup cost.
func NewSource(factory Factory, seed string) *Source {
	if factory == nil {
		return &Source{next: rand.Float64}
	}
	if seed == "" {
		seed = RandomSeed()
	}
	next := factory(seed)
	if next == nil {
		return &Source{next: rand.Float64}
	}

	return &Source{next: next, seed: seed, reproducible: true}
}

// Next returns the next float in [0,1).
func (s *Source) Next() float64 {
	return s.next()
}

// Seed returns the seed in use, or "" when the stream is not reproducible.
func (s *Source) Seed() string {
	return s.seed
}

// Reproducible reports whether the stream was built from a Factory.
func (s *Source) Reproducible() bool {
	return s.reproducible
}

// InRange maps Next() onto [min, max) and subtracts offset. With inclusive
// set the interval widens by one unit on each side, [min-1, max+1), so that
// the extremes are reachable without directional bias once the caller clamps.
// Complexity: O(1).
func (s *Source) InRange(min, max int, inclusive bool, offset float64) float64 {
	lo, hi := float64(min), float64(max)
	if inclusive {
		lo--
		hi++
	}
	return s.Next()*(hi-lo) + lo - offset
}
